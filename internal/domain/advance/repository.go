package advance

import "context"

type AdvanceRepository interface {
	Create(ctx context.Context, a Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	List(ctx context.Context) ([]Advance, error)
	ListByWorker(ctx context.Context, workerID string) ([]Advance, error)
	Update(ctx context.Context, req UpdateAdvanceRequest) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, advances []Advance) error
}
