package billing

import "context"

type BillingService interface {
	// Bills
	CreateBill(ctx context.Context, req CreateBillRequest) (Bill, error)
	GetBill(ctx context.Context, id string) (Bill, error)
	ListBills(ctx context.Context, projectID string) ([]BillResponse, error)
	UpdateBill(ctx context.Context, req UpdateBillRequest) (Bill, error)
	DeleteBill(ctx context.Context, id string) error

	// Client payments
	CreateClientPayment(ctx context.Context, req CreateClientPaymentRequest) (ClientPayment, error)
	ListClientPayments(ctx context.Context, projectID string) ([]ClientPaymentResponse, error)
	UpdateClientPayment(ctx context.Context, req UpdateClientPaymentRequest) error
	DeleteClientPayment(ctx context.Context, id string) error
}
