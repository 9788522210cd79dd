package mess

import "context"

type MessService interface {
	CreateEntry(ctx context.Context, req CreateEntryRequest) (Entry, error)
	ListEntries(ctx context.Context, projectID string) ([]EntryResponse, error)
	UpdateEntry(ctx context.Context, req UpdateEntryRequest) (Entry, error)
	DeleteEntry(ctx context.Context, id string) error
}
