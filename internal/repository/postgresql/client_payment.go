package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type clientPaymentRepositoryImpl struct {
	db *database.DB
}

func NewClientPaymentRepository(db *database.DB) billing.ClientPaymentRepository {
	return &clientPaymentRepositoryImpl{db: db}
}

func (r *clientPaymentRepositoryImpl) Create(ctx context.Context, p billing.ClientPayment) (billing.ClientPayment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO client_payments (id, project_id, date, amount, payment_mode, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.ProjectID, p.Date, p.Amount, p.PaymentMode, p.Remarks,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return billing.ClientPayment{}, err
	}

	return p, nil
}

func (r *clientPaymentRepositoryImpl) GetByID(ctx context.Context, id string) (billing.ClientPayment, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, project_id, date, amount, payment_mode, remarks, created_at, updated_at
		FROM client_payments
		WHERE id = $1
	`
	var p billing.ClientPayment
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProjectID, &p.Date, &p.Amount, &p.PaymentMode, &p.Remarks,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.ClientPayment{}, billing.ErrClientPaymentNotFound
		}
		return billing.ClientPayment{}, err
	}

	return p, nil
}

func (r *clientPaymentRepositoryImpl) List(ctx context.Context) ([]billing.ClientPayment, error) {
	return r.list(ctx, `
		SELECT id, project_id, date, amount, payment_mode, remarks, created_at, updated_at
		FROM client_payments
		ORDER BY date DESC
	`)
}

func (r *clientPaymentRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]billing.ClientPayment, error) {
	return r.list(ctx, `
		SELECT id, project_id, date, amount, payment_mode, remarks, created_at, updated_at
		FROM client_payments
		WHERE project_id = $1
		ORDER BY date DESC
	`, projectID)
}

func (r *clientPaymentRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]billing.ClientPayment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []billing.ClientPayment
	for rows.Next() {
		var p billing.ClientPayment
		if err := rows.Scan(
			&p.ID, &p.ProjectID, &p.Date, &p.Amount, &p.PaymentMode, &p.Remarks,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *clientPaymentRepositoryImpl) Update(ctx context.Context, req billing.UpdateClientPaymentRequest) error {
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
	query := fmt.Sprintf("UPDATE client_payments SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return billing.ErrClientPaymentNotFound
	}

	return nil
}

func (r *clientPaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM client_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return billing.ErrClientPaymentNotFound
	}

	return nil
}

func (r *clientPaymentRepositoryImpl) ReplaceAll(ctx context.Context, payments []billing.ClientPayment) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM client_payments`); err != nil {
		return err
	}
	for _, p := range payments {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO client_payments (id, project_id, date, amount, payment_mode, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		`, p.ID, p.ProjectID, p.Date, p.Amount, p.PaymentMode, p.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
