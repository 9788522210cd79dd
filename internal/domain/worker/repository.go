package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByCode(ctx context.Context, code string) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, workers []Worker) error
}
