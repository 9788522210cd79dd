package kharchi

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type KharchiServiceImpl struct {
	entryRepo  kharchi.EntryRepository
	workerRepo worker.WorkerRepository
}

func NewKharchiService(entryRepo kharchi.EntryRepository, workerRepo worker.WorkerRepository) kharchi.KharchiService {
	return &KharchiServiceImpl{entryRepo: entryRepo, workerRepo: workerRepo}
}

// SaveEntries merges the incoming sheet into the stored ledger. The
// merge drops non-positive amounts, so only what survives it is written.
func (s *KharchiServiceImpl) SaveEntries(ctx context.Context, req kharchi.SaveEntriesRequest) ([]kharchi.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	incoming := make([]kharchi.Entry, 0, len(req.Entries))
	for _, in := range req.Entries {
		if _, err := s.workerRepo.GetByID(ctx, in.WorkerID); err != nil {
			if err == worker.ErrWorkerNotFound {
				return nil, kharchi.ErrWorkerNotFound
			}
			return nil, fmt.Errorf("get worker: %w", err)
		}
		incoming = append(incoming, kharchi.Entry{
			ProjectID: in.ProjectID,
			WorkerID:  in.WorkerID,
			Date:      in.Date,
			Amount:    in.Amount,
			Remarks:   in.Remarks,
		})
	}

	existing, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kharchi entries: %w", err)
	}

	// Entries without a stored counterpart get their id here, so the
	// response carries the id the row is saved under.
	known := make(map[[2]string]bool, len(existing))
	for _, e := range existing {
		known[[2]string{e.WorkerID, e.Date}] = true
	}
	for i, e := range incoming {
		if !e.Amount.IsPositive() {
			continue
		}
		key := [2]string{e.WorkerID, e.Date}
		if !known[key] {
			incoming[i].ID = uuid.NewString()
			known[key] = true
		}
	}

	merged := Merge(existing, incoming)

	// Only entries the merge accepted need writing.
	var changed []kharchi.Entry
	for _, e := range incoming {
		if e.Amount.IsPositive() {
			changed = append(changed, e)
		}
	}
	if err := s.entryRepo.UpsertBatch(ctx, changed); err != nil {
		return nil, fmt.Errorf("save kharchi entries: %w", err)
	}

	responses := make([]kharchi.EntryResponse, 0, len(merged))
	for _, e := range merged {
		responses = append(responses, kharchi.ToResponse(e))
	}

	return responses, nil
}

func (s *KharchiServiceImpl) ListEntries(ctx context.Context, workerID string, projectID string, month string) ([]kharchi.EntryResponse, error) {
	var (
		entries []kharchi.Entry
		err     error
	)
	if workerID != "" {
		entries, err = s.entryRepo.ListByWorker(ctx, workerID)
	} else {
		entries, err = s.entryRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list kharchi entries: %w", err)
	}

	responses := make([]kharchi.EntryResponse, 0, len(entries))
	for _, e := range entries {
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		if month != "" && !validator.DateInMonth(e.Date, month) {
			continue
		}
		responses = append(responses, kharchi.ToResponse(e))
	}

	return responses, nil
}

func (s *KharchiServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.entryRepo.Delete(ctx, id)
}
