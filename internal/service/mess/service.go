package mess

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"

	billingsvc "github.com/snenterprise/sitebooks-backend-go/internal/service/billing"
)

type MessServiceImpl struct {
	entryRepo mess.EntryRepository
}

func NewMessService(entryRepo mess.EntryRepository) mess.MessService {
	return &MessServiceImpl{entryRepo: entryRepo}
}

func (s *MessServiceImpl) CreateEntry(ctx context.Context, req mess.CreateEntryRequest) (mess.Entry, error) {
	if err := req.Validate(); err != nil {
		return mess.Entry{}, err
	}

	weekEnd, err := WeekEndDate(req.WeekStartDate)
	if err != nil {
		return mess.Entry{}, fmt.Errorf("derive week end date: %w", err)
	}

	rate := billingsvc.SanitizeAmount(req.RatePerWorker)
	other := billingsvc.SanitizeAmount(req.OtherExpenses)
	paid := billingsvc.SanitizeAmount(req.AmountPaid)

	total := TotalAmount(req.WorkerCount, rate)

	entry := mess.Entry{
		ProjectID:         req.ProjectID,
		WeekStartDate:     req.WeekStartDate,
		WeekEndDate:       weekEnd,
		WorkerCount:       req.WorkerCount,
		RatePerWorker:     rate,
		TotalAmount:       total,
		OtherExpenses:     other,
		OtherExpensesDesc: req.OtherExpensesDesc,
		AmountPaid:        paid,
		Balance:           Balance(total, other, paid),
		Remarks:           req.Remarks,
	}
	if req.IsPaid != nil {
		entry.IsPaid = *req.IsPaid
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return mess.Entry{}, fmt.Errorf("create mess entry: %w", err)
	}

	return created, nil
}

func (s *MessServiceImpl) ListEntries(ctx context.Context, projectID string) ([]mess.EntryResponse, error) {
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mess entries: %w", err)
	}

	responses := make([]mess.EntryResponse, 0, len(entries))
	for _, e := range entries {
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		responses = append(responses, mess.ToResponse(e))
	}

	return responses, nil
}

// UpdateEntry re-derives the total and balance after applying the
// requested changes, so the stored row never goes stale. The week end
// date is re-derived only when the start actually moves; otherwise an
// explicit end date edit is stored as sent.
func (s *MessServiceImpl) UpdateEntry(ctx context.Context, req mess.UpdateEntryRequest) (mess.Entry, error) {
	if err := req.Validate(); err != nil {
		return mess.Entry{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mess.Entry{}, err
	}

	if req.ProjectID != nil {
		entry.ProjectID = *req.ProjectID
	}
	if req.WeekStartDate != nil && *req.WeekStartDate != entry.WeekStartDate {
		entry.WeekStartDate = *req.WeekStartDate
		weekEnd, err := WeekEndDate(entry.WeekStartDate)
		if err != nil {
			return mess.Entry{}, fmt.Errorf("derive week end date: %w", err)
		}
		entry.WeekEndDate = weekEnd
	} else if req.WeekEndDate != nil {
		entry.WeekEndDate = *req.WeekEndDate
	}
	if req.WorkerCount != nil {
		entry.WorkerCount = *req.WorkerCount
	}
	if req.RatePerWorker != nil {
		entry.RatePerWorker = billingsvc.SanitizeAmount(*req.RatePerWorker)
	}
	if req.OtherExpenses != nil {
		entry.OtherExpenses = billingsvc.SanitizeAmount(*req.OtherExpenses)
	}
	if req.OtherExpensesDesc != nil {
		entry.OtherExpensesDesc = req.OtherExpensesDesc
	}
	if req.AmountPaid != nil {
		entry.AmountPaid = billingsvc.SanitizeAmount(*req.AmountPaid)
	}
	if req.IsPaid != nil {
		entry.IsPaid = *req.IsPaid
	}
	if req.Remarks != nil {
		entry.Remarks = req.Remarks
	}

	entry.TotalAmount = TotalAmount(entry.WorkerCount, entry.RatePerWorker)
	entry.Balance = Balance(entry.TotalAmount, entry.OtherExpenses, entry.AmountPaid)

	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return mess.Entry{}, fmt.Errorf("update mess entry: %w", err)
	}

	return entry, nil
}

func (s *MessServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepo.Delete(ctx, id)
}
