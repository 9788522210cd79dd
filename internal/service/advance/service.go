package advance

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	workerRepo  worker.WorkerRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, workerRepo worker.WorkerRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{advanceRepo: advanceRepo, workerRepo: workerRepo}
}

func (s *AdvanceServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.Advance, error) {
	if err := req.Validate(); err != nil {
		return advance.Advance{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		if err == worker.ErrWorkerNotFound {
			return advance.Advance{}, advance.ErrWorkerNotFound
		}
		return advance.Advance{}, fmt.Errorf("get worker: %w", err)
	}

	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		ProjectID:   req.ProjectID,
		WorkerID:    req.WorkerID,
		Date:        req.Date,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
	})
	if err != nil {
		return advance.Advance{}, fmt.Errorf("create advance: %w", err)
	}

	return created, nil
}

func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context, workerID string) ([]advance.AdvanceResponse, error) {
	var (
		advances []advance.Advance
		err      error
	)
	if workerID != "" {
		advances, err = s.advanceRepo.ListByWorker(ctx, workerID)
	} else {
		advances, err = s.advanceRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list advances: %w", err)
	}

	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, advance.ToResponse(a))
	}

	return responses, nil
}

func (s *AdvanceServiceImpl) UpdateAdvance(ctx context.Context, req advance.UpdateAdvanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.advanceRepo.Update(ctx, req)
}

func (s *AdvanceServiceImpl) DeleteAdvance(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}
