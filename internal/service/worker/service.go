package worker

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.Worker, error) {
	if err := req.Validate(); err != nil {
		return worker.Worker{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		ProjectID:   req.ProjectID,
		Code:        req.Code,
		Name:        req.Name,
		Designation: req.Designation,
		JoinDate:    req.JoinDate,
		ExitDate:    req.ExitDate,
		IsActive:    true,
	})
	if err != nil {
		return worker.Worker{}, err
	}

	return created, nil
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToResponse(w))
	}

	return responses, nil
}

func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.workerRepo.Update(ctx, req)
}

func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}
