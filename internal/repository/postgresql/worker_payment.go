package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type workerPaymentRepositoryImpl struct {
	db *database.DB
}

func NewWorkerPaymentRepository(db *database.DB) payment.RecordRepository {
	return &workerPaymentRepositoryImpl{db: db}
}

const workerPaymentColumns = `id, project_id, worker_id, month, work_amount, mess_deduction, kharchi_deduction,
	advance_deduction, net_payable, is_paid, payment_date, remarks, created_at, updated_at`

func scanWorkerPayment(row pgx.Row) (payment.Record, error) {
	var rec payment.Record
	err := row.Scan(
		&rec.ID, &rec.ProjectID, &rec.WorkerID, &rec.Month, &rec.WorkAmount, &rec.MessDeduction, &rec.KharchiDeduction,
		&rec.AdvanceDeduction, &rec.NetPayable, &rec.IsPaid, &rec.PaymentDate, &rec.Remarks,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *workerPaymentRepositoryImpl) List(ctx context.Context) ([]payment.Record, error) {
	return r.list(ctx, `SELECT `+workerPaymentColumns+` FROM worker_payments ORDER BY month DESC, worker_id`)
}

func (r *workerPaymentRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]payment.Record, error) {
	return r.list(ctx, `SELECT `+workerPaymentColumns+` FROM worker_payments WHERE worker_id = $1 ORDER BY month DESC`, workerID)
}

func (r *workerPaymentRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]payment.Record, error) {
	return r.list(ctx, `SELECT `+workerPaymentColumns+` FROM worker_payments WHERE month = $1 ORDER BY worker_id`, month)
}

func (r *workerPaymentRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payment.Record
	for rows.Next() {
		rec, err := scanWorkerPayment(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ReplaceForWorkerMonths deletes whatever each incoming (worker, month)
// pair currently holds, then inserts the new records, all inside one
// transaction. Saving the same sheet twice therefore never duplicates
// a settlement.
func (r *workerPaymentRepositoryImpl) ReplaceForWorkerMonths(ctx context.Context, records []payment.Record) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		seen := make(map[[2]string]bool)
		for _, rec := range records {
			pair := [2]string{rec.WorkerID, rec.Month}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			if _, err := q.Exec(txCtx, `DELETE FROM worker_payments WHERE worker_id = $1 AND month = $2`, rec.WorkerID, rec.Month); err != nil {
				return err
			}
		}

		for _, rec := range records {
			if rec.ID == "" {
				rec.ID = uuid.NewString()
			}
			_, err := q.Exec(txCtx, `
				INSERT INTO worker_payments (id, project_id, worker_id, month, work_amount, mess_deduction, kharchi_deduction,
					advance_deduction, net_payable, is_paid, payment_date, remarks, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
			`, rec.ID, rec.ProjectID, rec.WorkerID, rec.Month, rec.WorkAmount, rec.MessDeduction, rec.KharchiDeduction,
				rec.AdvanceDeduction, rec.NetPayable, rec.IsPaid, rec.PaymentDate, rec.Remarks)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *workerPaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM worker_payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return payment.ErrRecordNotFound
	}

	return nil
}

func (r *workerPaymentRepositoryImpl) ReplaceAll(ctx context.Context, records []payment.Record) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM worker_payments`); err != nil {
		return err
	}
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO worker_payments (id, project_id, worker_id, month, work_amount, mess_deduction, kharchi_deduction,
				advance_deduction, net_payable, is_paid, payment_date, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		`, rec.ID, rec.ProjectID, rec.WorkerID, rec.Month, rec.WorkAmount, rec.MessDeduction, rec.KharchiDeduction,
			rec.AdvanceDeduction, rec.NetPayable, rec.IsPaid, rec.PaymentDate, rec.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
