package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type billRepositoryImpl struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) billing.BillRepository {
	return &billRepositoryImpl{db: db}
}

const billColumns = `id, project_id, serial_no, bill_no, work_nature, billing_month,
	amount, gst_rate, gst_amount, grand_total, certify_date, remarks, created_at, updated_at`

func scanBill(row pgx.Row) (billing.Bill, error) {
	var b billing.Bill
	err := row.Scan(
		&b.ID, &b.ProjectID, &b.SerialNo, &b.BillNo, &b.WorkNature, &b.BillingMonth,
		&b.Amount, &b.GSTRate, &b.GSTAmount, &b.GrandTotal, &b.CertifyDate, &b.Remarks,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *billRepositoryImpl) Create(ctx context.Context, b billing.Bill) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	query := `
		INSERT INTO bills (id, project_id, serial_no, bill_no, work_nature, billing_month,
			amount, gst_rate, gst_amount, grand_total, certify_date, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		b.ID, b.ProjectID, b.SerialNo, b.BillNo, b.WorkNature, b.BillingMonth,
		b.Amount, b.GSTRate, b.GSTAmount, b.GrandTotal, b.CertifyDate, b.Remarks,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return billing.Bill{}, err
	}

	return b, nil
}

func (r *billRepositoryImpl) GetByID(ctx context.Context, id string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanBill(q.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Bill{}, billing.ErrBillNotFound
		}
		return billing.Bill{}, err
	}

	return b, nil
}

func (r *billRepositoryImpl) List(ctx context.Context) ([]billing.Bill, error) {
	return r.list(ctx, `SELECT `+billColumns+` FROM bills ORDER BY billing_month DESC, created_at`)
}

func (r *billRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]billing.Bill, error) {
	return r.list(ctx, `SELECT `+billColumns+` FROM bills WHERE project_id = $1 ORDER BY billing_month DESC, created_at`, projectID)
}

func (r *billRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []billing.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}

	return bills, rows.Err()
}

// Update writes the whole row back. The service recomputes GST before
// calling, so partial updates would just re-derive the same fields anyway.
func (r *billRepositoryImpl) Update(ctx context.Context, b billing.Bill) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bills
		SET serial_no = $1, bill_no = $2, work_nature = $3, billing_month = $4,
			amount = $5, gst_rate = $6, gst_amount = $7, grand_total = $8,
			certify_date = $9, remarks = $10, updated_at = NOW()
		WHERE id = $11
	`
	commandTag, err := q.Exec(ctx, query,
		b.SerialNo, b.BillNo, b.WorkNature, b.BillingMonth,
		b.Amount, b.GSTRate, b.GSTAmount, b.GrandTotal,
		b.CertifyDate, b.Remarks, b.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return billing.ErrBillNotFound
	}

	return nil
}

func (r *billRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return billing.ErrBillNotFound
	}

	return nil
}

func (r *billRepositoryImpl) ReplaceAll(ctx context.Context, bills []billing.Bill) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM bills`); err != nil {
		return err
	}
	for _, b := range bills {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO bills (id, project_id, serial_no, bill_no, work_nature, billing_month,
				amount, gst_rate, gst_amount, grand_total, certify_date, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		`, b.ID, b.ProjectID, b.SerialNo, b.BillNo, b.WorkNature, b.BillingMonth,
			b.Amount, b.GSTRate, b.GSTAmount, b.GrandTotal, b.CertifyDate, b.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
