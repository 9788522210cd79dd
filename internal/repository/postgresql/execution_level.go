package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/execution"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type executionLevelRepositoryImpl struct {
	db *database.DB
}

func NewExecutionLevelRepository(db *database.DB) execution.LevelRepository {
	return &executionLevelRepositoryImpl{db: db}
}

func (r *executionLevelRepositoryImpl) Create(ctx context.Context, l execution.Level) (execution.Level, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	poursJSON, err := json.Marshal(l.Pours)
	if err != nil {
		return execution.Level{}, fmt.Errorf("marshal pours: %w", err)
	}

	query := `
		INSERT INTO execution_levels (id, project_id, name, pours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query, l.ID, l.ProjectID, l.Name, poursJSON).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return execution.Level{}, err
	}

	return l, nil
}

func (r *executionLevelRepositoryImpl) GetByID(ctx context.Context, id string) (execution.Level, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, project_id, name, pours, created_at, updated_at
		FROM execution_levels
		WHERE id = $1
	`
	var l execution.Level
	var poursJSON []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.ProjectID, &l.Name, &poursJSON, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return execution.Level{}, execution.ErrLevelNotFound
		}
		return execution.Level{}, err
	}

	if poursJSON != nil {
		json.Unmarshal(poursJSON, &l.Pours)
	}

	return l, nil
}

func (r *executionLevelRepositoryImpl) List(ctx context.Context) ([]execution.Level, error) {
	return r.list(ctx, `
		SELECT id, project_id, name, pours, created_at, updated_at
		FROM execution_levels
		ORDER BY created_at
	`)
}

func (r *executionLevelRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]execution.Level, error) {
	return r.list(ctx, `
		SELECT id, project_id, name, pours, created_at, updated_at
		FROM execution_levels
		WHERE project_id = $1
		ORDER BY created_at
	`, projectID)
}

func (r *executionLevelRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]execution.Level, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []execution.Level
	for rows.Next() {
		var l execution.Level
		var poursJSON []byte
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Name, &poursJSON, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		if poursJSON != nil {
			json.Unmarshal(poursJSON, &l.Pours)
		}
		levels = append(levels, l)
	}

	return levels, rows.Err()
}

func (r *executionLevelRepositoryImpl) Update(ctx context.Context, req execution.UpdateLevelRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Pours != nil {
		poursJSON, err := json.Marshal(*req.Pours)
		if err != nil {
			return fmt.Errorf("marshal pours: %w", err)
		}
		setClauses = append(setClauses, fmt.Sprintf("pours = $%d", argIdx))
		args = append(args, poursJSON)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE execution_levels SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return execution.ErrLevelNotFound
	}

	return nil
}

func (r *executionLevelRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM execution_levels WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return execution.ErrLevelNotFound
	}

	return nil
}

func (r *executionLevelRepositoryImpl) ReplaceAll(ctx context.Context, levels []execution.Level) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM execution_levels`); err != nil {
		return err
	}
	for _, l := range levels {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		poursJSON, err := json.Marshal(l.Pours)
		if err != nil {
			return fmt.Errorf("marshal pours: %w", err)
		}
		_, err = q.Exec(ctx, `
			INSERT INTO execution_levels (id, project_id, name, pours, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`, l.ID, l.ProjectID, l.Name, poursJSON)
		if err != nil {
			return err
		}
	}

	return nil
}
