package execution

import "context"

type LevelRepository interface {
	Create(ctx context.Context, l Level) (Level, error)
	GetByID(ctx context.Context, id string) (Level, error)
	List(ctx context.Context) ([]Level, error)
	ListByProject(ctx context.Context, projectID string) ([]Level, error)
	Update(ctx context.Context, req UpdateLevelRequest) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, levels []Level) error
}
