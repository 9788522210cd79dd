package payment

import "context"

type PaymentService interface {
	PreviewDeductions(ctx context.Context, req DeductionPreviewRequest) (RecordResponse, error)
	SaveRecords(ctx context.Context, req SaveRecordsRequest) ([]RecordResponse, error)
	ListRecords(ctx context.Context, workerID string, month string) ([]RecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
