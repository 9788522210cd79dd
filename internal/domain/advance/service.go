package advance

import "context"

type AdvanceService interface {
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (Advance, error)
	ListAdvances(ctx context.Context, workerID string) ([]AdvanceResponse, error)
	UpdateAdvance(ctx context.Context, req UpdateAdvanceRequest) error
	DeleteAdvance(ctx context.Context, id string) error
}
