package billing

import "context"

type BillRepository interface {
	Create(ctx context.Context, b Bill) (Bill, error)
	GetByID(ctx context.Context, id string) (Bill, error)
	List(ctx context.Context) ([]Bill, error)
	ListByProject(ctx context.Context, projectID string) ([]Bill, error)
	Update(ctx context.Context, b Bill) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, bills []Bill) error
}

type ClientPaymentRepository interface {
	Create(ctx context.Context, p ClientPayment) (ClientPayment, error)
	GetByID(ctx context.Context, id string) (ClientPayment, error)
	List(ctx context.Context) ([]ClientPayment, error)
	ListByProject(ctx context.Context, projectID string) ([]ClientPayment, error)
	Update(ctx context.Context, req UpdateClientPaymentRequest) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, payments []ClientPayment) error
}
