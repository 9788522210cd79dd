package purchase

import "context"

type PurchaseService interface {
	CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (Purchase, error)
	GetPurchase(ctx context.Context, id string) (Purchase, error)
	ListPurchases(ctx context.Context, projectID string) ([]PurchaseResponse, error)
	UpdatePurchase(ctx context.Context, req UpdatePurchaseRequest) error
	DeletePurchase(ctx context.Context, id string) error
}
