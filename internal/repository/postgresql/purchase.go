package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type purchaseRepositoryImpl struct {
	db *database.DB
}

func NewPurchaseRepository(db *database.DB) purchase.PurchaseRepository {
	return &purchaseRepositoryImpl{db: db}
}

func (r *purchaseRepositoryImpl) Create(ctx context.Context, p purchase.Purchase) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	query := `
		INSERT INTO purchases (id, project_id, date, vendor, item, unit, quantity, rate,
			total_amount, paid_by, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.ProjectID, p.Date, p.Vendor, p.Item, p.Unit, p.Quantity, p.Rate,
		p.TotalAmount, p.PaidBy, p.Remarks,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return purchase.Purchase{}, err
	}

	return p, nil
}

func (r *purchaseRepositoryImpl) GetByID(ctx context.Context, id string) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, project_id, date, vendor, item, unit, quantity, rate,
			total_amount, paid_by, remarks, created_at, updated_at
		FROM purchases
		WHERE id = $1
	`
	var p purchase.Purchase
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProjectID, &p.Date, &p.Vendor, &p.Item, &p.Unit, &p.Quantity, &p.Rate,
		&p.TotalAmount, &p.PaidBy, &p.Remarks, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return purchase.Purchase{}, purchase.ErrPurchaseNotFound
		}
		return purchase.Purchase{}, err
	}

	return p, nil
}

func (r *purchaseRepositoryImpl) List(ctx context.Context) ([]purchase.Purchase, error) {
	return r.list(ctx, `
		SELECT id, project_id, date, vendor, item, unit, quantity, rate,
			total_amount, paid_by, remarks, created_at, updated_at
		FROM purchases
		ORDER BY date DESC
	`)
}

func (r *purchaseRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]purchase.Purchase, error) {
	return r.list(ctx, `
		SELECT id, project_id, date, vendor, item, unit, quantity, rate,
			total_amount, paid_by, remarks, created_at, updated_at
		FROM purchases
		WHERE project_id = $1
		ORDER BY date DESC
	`, projectID)
}

func (r *purchaseRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []purchase.Purchase
	for rows.Next() {
		var p purchase.Purchase
		if err := rows.Scan(
			&p.ID, &p.ProjectID, &p.Date, &p.Vendor, &p.Item, &p.Unit, &p.Quantity, &p.Rate,
			&p.TotalAmount, &p.PaidBy, &p.Remarks, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	return purchases, rows.Err()
}

func (r *purchaseRepositoryImpl) Update(ctx context.Context, req purchase.UpdatePurchaseRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Date != nil {
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.Vendor != nil {
		setClauses = append(setClauses, fmt.Sprintf("vendor = $%d", argIdx))
		args = append(args, *req.Vendor)
		argIdx++
	}
	if req.Item != nil {
		setClauses = append(setClauses, fmt.Sprintf("item = $%d", argIdx))
		args = append(args, *req.Item)
		argIdx++
	}
	if req.Unit != nil {
		setClauses = append(setClauses, fmt.Sprintf("unit = $%d", argIdx))
		args = append(args, *req.Unit)
		argIdx++
	}
	if req.Quantity != nil {
		setClauses = append(setClauses, fmt.Sprintf("quantity = $%d", argIdx))
		args = append(args, *req.Quantity)
		argIdx++
	}
	if req.Rate != nil {
		setClauses = append(setClauses, fmt.Sprintf("rate = $%d", argIdx))
		args = append(args, *req.Rate)
		argIdx++
	}
	if req.TotalAmount != nil {
		setClauses = append(setClauses, fmt.Sprintf("total_amount = $%d", argIdx))
		args = append(args, *req.TotalAmount)
		argIdx++
	}
	if req.PaidBy != nil {
		setClauses = append(setClauses, fmt.Sprintf("paid_by = $%d", argIdx))
		args = append(args, *req.PaidBy)
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
	query := fmt.Sprintf("UPDATE purchases SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return purchase.ErrPurchaseNotFound
	}

	return nil
}

func (r *purchaseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return purchase.ErrPurchaseNotFound
	}

	return nil
}

func (r *purchaseRepositoryImpl) ReplaceAll(ctx context.Context, purchases []purchase.Purchase) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM purchases`); err != nil {
		return err
	}
	for _, p := range purchases {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO purchases (id, project_id, date, vendor, item, unit, quantity, rate,
				total_amount, paid_by, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		`, p.ID, p.ProjectID, p.Date, p.Vendor, p.Item, p.Unit, p.Quantity, p.Rate,
			p.TotalAmount, p.PaidBy, p.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
