package execution

import "context"

type ExecutionService interface {
	CreateLevel(ctx context.Context, req CreateLevelRequest) (Level, error)
	ListLevels(ctx context.Context, projectID string) ([]LevelResponse, error)
	UpdateLevel(ctx context.Context, req UpdateLevelRequest) error
	DeleteLevel(ctx context.Context, id string) error
}
