package purchase

import "context"

type PurchaseRepository interface {
	Create(ctx context.Context, p Purchase) (Purchase, error)
	GetByID(ctx context.Context, id string) (Purchase, error)
	List(ctx context.Context) ([]Purchase, error)
	ListByProject(ctx context.Context, projectID string) ([]Purchase, error)
	Update(ctx context.Context, req UpdatePurchaseRequest) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, purchases []Purchase) error
}
