package execution

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/execution"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
)

type ExecutionServiceImpl struct {
	levelRepo   execution.LevelRepository
	projectRepo project.ProjectRepository
}

func NewExecutionService(levelRepo execution.LevelRepository, projectRepo project.ProjectRepository) execution.ExecutionService {
	return &ExecutionServiceImpl{levelRepo: levelRepo, projectRepo: projectRepo}
}

func (s *ExecutionServiceImpl) CreateLevel(ctx context.Context, req execution.CreateLevelRequest) (execution.Level, error) {
	if err := req.Validate(); err != nil {
		return execution.Level{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		if err == project.ErrProjectNotFound {
			return execution.Level{}, execution.ErrProjectNotFound
		}
		return execution.Level{}, fmt.Errorf("get project: %w", err)
	}

	created, err := s.levelRepo.Create(ctx, execution.Level{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Pours:     req.Pours,
	})
	if err != nil {
		return execution.Level{}, fmt.Errorf("create execution level: %w", err)
	}

	return created, nil
}

func (s *ExecutionServiceImpl) ListLevels(ctx context.Context, projectID string) ([]execution.LevelResponse, error) {
	var (
		levels []execution.Level
		err    error
	)
	if projectID != "" {
		levels, err = s.levelRepo.ListByProject(ctx, projectID)
	} else {
		levels, err = s.levelRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list execution levels: %w", err)
	}

	responses := make([]execution.LevelResponse, 0, len(levels))
	for _, l := range levels {
		responses = append(responses, execution.ToResponse(l))
	}

	return responses, nil
}

func (s *ExecutionServiceImpl) UpdateLevel(ctx context.Context, req execution.UpdateLevelRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.levelRepo.Update(ctx, req)
}

func (s *ExecutionServiceImpl) DeleteLevel(ctx context.Context, id string) error {
	return s.levelRepo.Delete(ctx, id)
}
