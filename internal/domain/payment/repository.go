package payment

import "context"

type RecordRepository interface {
	List(ctx context.Context) ([]Record, error)
	ListByWorker(ctx context.Context, workerID string) ([]Record, error)
	ListByMonth(ctx context.Context, month string) ([]Record, error)
	// ReplaceForWorkerMonths removes every record matching one of the
	// (workerID, month) pairs in records, then inserts records. Runs in a
	// single transaction so a sheet save is all-or-nothing.
	ReplaceForWorkerMonths(ctx context.Context, records []Record) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, records []Record) error
}
