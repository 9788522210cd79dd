package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `
		INSERT INTO advances (id, project_id, worker_id, date, amount, paid_by, payment_mode, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		a.ID, a.ProjectID, a.WorkerID, a.Date, a.Amount, a.PaidBy, a.PaymentMode, a.Remarks,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return advance.Advance{}, err
	}

	return a, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, project_id, worker_id, date, amount, paid_by, payment_mode, remarks, created_at, updated_at
		FROM advances
		WHERE id = $1
	`
	var a advance.Advance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.ProjectID, &a.WorkerID, &a.Date, &a.Amount, &a.PaidBy, &a.PaymentMode, &a.Remarks,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, err
	}

	return a, nil
}

func (r *advanceRepositoryImpl) List(ctx context.Context) ([]advance.Advance, error) {
	return r.list(ctx, `
		SELECT id, project_id, worker_id, date, amount, paid_by, payment_mode, remarks, created_at, updated_at
		FROM advances
		ORDER BY date
	`)
}

func (r *advanceRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]advance.Advance, error) {
	return r.list(ctx, `
		SELECT id, project_id, worker_id, date, amount, paid_by, payment_mode, remarks, created_at, updated_at
		FROM advances
		WHERE worker_id = $1
		ORDER BY date
	`, workerID)
}

func (r *advanceRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		if err := rows.Scan(
			&a.ID, &a.ProjectID, &a.WorkerID, &a.Date, &a.Amount, &a.PaidBy, &a.PaymentMode, &a.Remarks,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepositoryImpl) Update(ctx context.Context, req advance.UpdateAdvanceRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Date != nil {
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.Amount != nil {
		setClauses = append(setClauses, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.PaidBy != nil {
		setClauses = append(setClauses, fmt.Sprintf("paid_by = $%d", argIdx))
		args = append(args, *req.PaidBy)
		argIdx++
	}
	if req.PaymentMode != nil {
		setClauses = append(setClauses, fmt.Sprintf("payment_mode = $%d", argIdx))
		args = append(args, *req.PaymentMode)
		argIdx++
	}
	if req.Remarks != nil {
		setClauses = append(setClauses, fmt.Sprintf("remarks = $%d", argIdx))
		args = append(args, *req.Remarks)
		argIdx++
	}

	if len(setClauses) == 0 {
		return nil
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE advances SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}

func (r *advanceRepositoryImpl) ReplaceAll(ctx context.Context, advances []advance.Advance) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM advances`); err != nil {
		return err
	}
	for _, a := range advances {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO advances (id, project_id, worker_id, date, amount, paid_by, payment_mode, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		`, a.ID, a.ProjectID, a.WorkerID, a.Date, a.Amount, a.PaidBy, a.PaymentMode, a.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
