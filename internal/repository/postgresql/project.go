package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO projects (id, name, client_name, location, start_date, completion_date,
			budget, spent, completion_percentage, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.Name, p.ClientName, p.Location, p.StartDate, p.CompletionDate,
		p.Budget, p.Spent, p.CompletionPercentage, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, client_name, location, start_date, completion_date,
			budget, spent, completion_percentage, status, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.ClientName, &p.Location, &p.StartDate, &p.CompletionDate,
		&p.Budget, &p.Spent, &p.CompletionPercentage, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, name, client_name, location, start_date, completion_date,
			budget, spent, completion_percentage, status, created_at, updated_at
		FROM projects
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.ClientName, &p.Location, &p.StartDate, &p.CompletionDate,
			&p.Budget, &p.Spent, &p.CompletionPercentage, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.ClientName != nil {
		setClauses = append(setClauses, fmt.Sprintf("client_name = $%d", argIdx))
		args = append(args, *req.ClientName)
		argIdx++
	}
	if req.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", argIdx))
		args = append(args, *req.Location)
		argIdx++
	}
	if req.StartDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.CompletionDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("completion_date = $%d", argIdx))
		args = append(args, *req.CompletionDate)
		argIdx++
	}
	if req.Budget != nil {
		setClauses = append(setClauses, fmt.Sprintf("budget = $%d", argIdx))
		args = append(args, *req.Budget)
		argIdx++
	}
	if req.Spent != nil {
		setClauses = append(setClauses, fmt.Sprintf("spent = $%d", argIdx))
		args = append(args, *req.Spent)
		argIdx++
	}
	if req.CompletionPercentage != nil {
		setClauses = append(setClauses, fmt.Sprintf("completion_percentage = $%d", argIdx))
		args = append(args, *req.CompletionPercentage)
		argIdx++
	}
	if req.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepositoryImpl) ReplaceAll(ctx context.Context, projects []project.Project) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM projects`); err != nil {
		return err
	}
	for _, p := range projects {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO projects (id, name, client_name, location, start_date, completion_date,
				budget, spent, completion_percentage, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		`, p.ID, p.Name, p.ClientName, p.Location, p.StartDate, p.CompletionDate,
			p.Budget, p.Spent, p.CompletionPercentage, p.Status)
		if err != nil {
			return err
		}
	}

	return nil
}
