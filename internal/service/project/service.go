package project

import (
	"context"
	"fmt"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"

	billingsvc "github.com/snenterprise/sitebooks-backend-go/internal/service/billing"
)

type ProjectServiceImpl struct {
	projectRepo project.ProjectRepository
}

func NewProjectService(projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	status := project.Status(req.Status)
	if status == "" {
		status = project.StatusPlanning
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		Name:                 req.Name,
		ClientName:           req.ClientName,
		Location:             req.Location,
		StartDate:            req.StartDate,
		CompletionDate:       req.CompletionDate,
		Budget:               billingsvc.SanitizeAmount(req.Budget),
		Spent:                billingsvc.SanitizeAmount(req.Spent),
		CompletionPercentage: req.CompletionPercentage,
		Status:               status,
	})
	if err != nil {
		return project.Project{}, fmt.Errorf("create project: %w", err)
	}

	return created, nil
}

func (s *ProjectServiceImpl) GetProject(ctx context.Context, id string) (project.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}

	return responses, nil
}

func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, req project.UpdateProjectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.projectRepo.Update(ctx, req)
}

func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
