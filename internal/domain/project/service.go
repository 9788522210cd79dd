package project

import "context"

type ProjectService interface {
	CreateProject(ctx context.Context, req CreateProjectRequest) (Project, error)
	GetProject(ctx context.Context, id string) (Project, error)
	ListProjects(ctx context.Context) ([]ProjectResponse, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) error
	DeleteProject(ctx context.Context, id string) error
}
