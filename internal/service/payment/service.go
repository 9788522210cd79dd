package payment

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
	billingsvc "github.com/snenterprise/sitebooks-backend-go/internal/service/billing"
)

type PaymentServiceImpl struct {
	recordRepo  payment.RecordRepository
	workerRepo  worker.WorkerRepository
	kharchiRepo kharchi.EntryRepository
	advanceRepo advance.AdvanceRepository
}

func NewPaymentService(
	recordRepo payment.RecordRepository,
	workerRepo worker.WorkerRepository,
	kharchiRepo kharchi.EntryRepository,
	advanceRepo advance.AdvanceRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		recordRepo:  recordRepo,
		workerRepo:  workerRepo,
		kharchiRepo: kharchiRepo,
		advanceRepo: advanceRepo,
	}
}

func (s *PaymentServiceImpl) buildRecord(ctx context.Context, in payment.RecordInput) (payment.Record, error) {
	if _, err := s.workerRepo.GetByID(ctx, in.WorkerID); err != nil {
		if err == worker.ErrWorkerNotFound {
			return payment.Record{}, payment.ErrWorkerNotFound
		}
		return payment.Record{}, fmt.Errorf("get worker: %w", err)
	}

	kharchiEntries, err := s.kharchiRepo.ListByWorker(ctx, in.WorkerID)
	if err != nil {
		return payment.Record{}, fmt.Errorf("list kharchi entries: %w", err)
	}
	advances, err := s.advanceRepo.ListByWorker(ctx, in.WorkerID)
	if err != nil {
		return payment.Record{}, fmt.Errorf("list advances: %w", err)
	}

	workAmount := billingsvc.SanitizeAmount(in.WorkAmount)
	messDeduction := billingsvc.SanitizeAmount(in.MessDeduction)
	kharchiDeduction := SumKharchiForMonth(kharchiEntries, in.WorkerID, in.Month)
	advanceDeduction := SumAdvancesForMonth(advances, in.WorkerID, in.Month)

	return payment.Record{
		ProjectID:        in.ProjectID,
		WorkerID:         in.WorkerID,
		Month:            in.Month,
		WorkAmount:       workAmount,
		MessDeduction:    messDeduction,
		KharchiDeduction: kharchiDeduction,
		AdvanceDeduction: advanceDeduction,
		NetPayable:       NetPayable(workAmount, messDeduction, kharchiDeduction, advanceDeduction),
		IsPaid:           in.IsPaid,
		PaymentDate:      in.PaymentDate,
		Remarks:          in.Remarks,
	}, nil
}

func (s *PaymentServiceImpl) PreviewDeductions(ctx context.Context, req payment.DeductionPreviewRequest) (payment.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.RecordResponse{}, err
	}

	record, err := s.buildRecord(ctx, payment.RecordInput{
		WorkerID:      req.WorkerID,
		Month:         req.Month,
		WorkAmount:    req.WorkAmount,
		MessDeduction: req.MessDeduction,
	})
	if err != nil {
		return payment.RecordResponse{}, err
	}

	return payment.ToResponse(record), nil
}

// SaveRecords settles a sheet. Each (worker, month) pair the sheet
// touches is wiped and rewritten by the repository in one transaction,
// so the save is last-write-wins and never duplicates a settlement.
func (s *PaymentServiceImpl) SaveRecords(ctx context.Context, req payment.SaveRecordsRequest) ([]payment.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records := make([]payment.Record, 0, len(req.Records))
	for _, in := range req.Records {
		record, err := s.buildRecord(ctx, in)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := s.recordRepo.ReplaceForWorkerMonths(ctx, records); err != nil {
		return nil, fmt.Errorf("save worker payments: %w", err)
	}

	responses := make([]payment.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payment.ToResponse(rec))
	}

	return responses, nil
}

func (s *PaymentServiceImpl) ListRecords(ctx context.Context, workerID string, month string) ([]payment.RecordResponse, error) {
	var (
		records []payment.Record
		err     error
	)
	switch {
	case workerID != "":
		records, err = s.recordRepo.ListByWorker(ctx, workerID)
	case month != "":
		records, err = s.recordRepo.ListByMonth(ctx, month)
	default:
		records, err = s.recordRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list worker payments: %w", err)
	}

	responses := make([]payment.RecordResponse, 0, len(records))
	for _, rec := range records {
		if month != "" && rec.Month != month {
			continue
		}
		responses = append(responses, payment.ToResponse(rec))
	}

	return responses, nil
}

func (s *PaymentServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.recordRepo.Delete(ctx, id)
}
