package kharchi

import "context"

type EntryRepository interface {
	List(ctx context.Context) ([]Entry, error)
	ListByWorker(ctx context.Context, workerID string) ([]Entry, error)
	UpsertBatch(ctx context.Context, entries []Entry) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, entries []Entry) error
}
