package kharchi

import "context"

type KharchiService interface {
	SaveEntries(ctx context.Context, req SaveEntriesRequest) ([]EntryResponse, error)
	ListEntries(ctx context.Context, workerID string, projectID string, month string) ([]EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}
