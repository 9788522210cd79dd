package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	query := `
		INSERT INTO workers (id, project_id, code, name, designation, join_date, exit_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		w.ID, w.ProjectID, w.Code, w.Name, w.Designation, w.JoinDate, w.ExitDate, w.IsActive,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrWorkerCodeExists
		}
		return worker.Worker{}, err
	}

	return w, nil
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *workerRepositoryImpl) GetByCode(ctx context.Context, code string) (worker.Worker, error) {
	return r.getOne(ctx, `WHERE code = $1`, code)
}

func (r *workerRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, project_id, code, name, designation, join_date, exit_date, is_active, created_at, updated_at
		FROM workers ` + where

	var w worker.Worker
	err := q.QueryRow(ctx, query, arg).Scan(
		&w.ID, &w.ProjectID, &w.Code, &w.Name, &w.Designation, &w.JoinDate, &w.ExitDate, &w.IsActive,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	return w, nil
}

func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, project_id, code, name, designation, join_date, exit_date, is_active, created_at, updated_at
		FROM workers
		ORDER BY code
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID, &w.ProjectID, &w.Code, &w.Name, &w.Designation, &w.JoinDate, &w.ExitDate, &w.IsActive,
			&w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

func (r *workerRepositoryImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.ProjectID != nil {
		setClauses = append(setClauses, fmt.Sprintf("project_id = $%d", argIdx))
		args = append(args, *req.ProjectID)
		argIdx++
	}
	if req.Code != nil {
		setClauses = append(setClauses, fmt.Sprintf("code = $%d", argIdx))
		args = append(args, *req.Code)
		argIdx++
	}
	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Designation != nil {
		setClauses = append(setClauses, fmt.Sprintf("designation = $%d", argIdx))
		args = append(args, *req.Designation)
		argIdx++
	}
	if req.JoinDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("join_date = $%d", argIdx))
		args = append(args, *req.JoinDate)
		argIdx++
	}
	if req.ExitDate != nil {
		setClauses = append(setClauses, fmt.Sprintf("exit_date = $%d", argIdx))
		args = append(args, *req.ExitDate)
		argIdx++
	}
	if req.IsActive != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE workers SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.ErrWorkerCodeExists
		}
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

func (r *workerRepositoryImpl) ReplaceAll(ctx context.Context, workers []worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM workers`); err != nil {
		return err
	}
	for _, w := range workers {
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO workers (id, project_id, code, name, designation, join_date, exit_date, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		`, w.ID, w.ProjectID, w.Code, w.Name, w.Designation, w.JoinDate, w.ExitDate, w.IsActive)
		if err != nil {
			return err
		}
	}

	return nil
}
