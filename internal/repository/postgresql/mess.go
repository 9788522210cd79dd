package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type messRepositoryImpl struct {
	db *database.DB
}

func NewMessRepository(db *database.DB) mess.EntryRepository {
	return &messRepositoryImpl{db: db}
}

const messColumns = `id, project_id, week_start_date, week_end_date, worker_count, rate_per_worker,
	total_amount, other_expenses, other_expenses_desc, amount_paid, balance, is_paid, remarks, created_at, updated_at`

func scanMessEntry(row pgx.Row) (mess.Entry, error) {
	var e mess.Entry
	err := row.Scan(
		&e.ID, &e.ProjectID, &e.WeekStartDate, &e.WeekEndDate, &e.WorkerCount, &e.RatePerWorker,
		&e.TotalAmount, &e.OtherExpenses, &e.OtherExpensesDesc, &e.AmountPaid, &e.Balance, &e.IsPaid,
		&e.Remarks, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *messRepositoryImpl) Create(ctx context.Context, e mess.Entry) (mess.Entry, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `
		INSERT INTO mess_entries (id, project_id, week_start_date, week_end_date, worker_count, rate_per_worker,
			total_amount, other_expenses, other_expenses_desc, amount_paid, balance, is_paid, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		e.ID, e.ProjectID, e.WeekStartDate, e.WeekEndDate, e.WorkerCount, e.RatePerWorker,
		e.TotalAmount, e.OtherExpenses, e.OtherExpensesDesc, e.AmountPaid, e.Balance, e.IsPaid, e.Remarks,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mess.Entry{}, err
	}

	return e, nil
}

func (r *messRepositoryImpl) GetByID(ctx context.Context, id string) (mess.Entry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanMessEntry(q.QueryRow(ctx, `SELECT `+messColumns+` FROM mess_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mess.Entry{}, mess.ErrEntryNotFound
		}
		return mess.Entry{}, err
	}

	return e, nil
}

func (r *messRepositoryImpl) List(ctx context.Context) ([]mess.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+messColumns+` FROM mess_entries ORDER BY week_start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []mess.Entry
	for rows.Next() {
		e, err := scanMessEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Update writes the whole row back. Derived columns change whenever any
// input changes, so the service always sends a fully recomputed entry.
func (r *messRepositoryImpl) Update(ctx context.Context, e mess.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE mess_entries
		SET project_id = $1, week_start_date = $2, week_end_date = $3, worker_count = $4,
			rate_per_worker = $5, total_amount = $6, other_expenses = $7, other_expenses_desc = $8,
			amount_paid = $9, balance = $10, is_paid = $11, remarks = $12, updated_at = NOW()
		WHERE id = $13
	`
	commandTag, err := q.Exec(ctx, query,
		e.ProjectID, e.WeekStartDate, e.WeekEndDate, e.WorkerCount,
		e.RatePerWorker, e.TotalAmount, e.OtherExpenses, e.OtherExpensesDesc,
		e.AmountPaid, e.Balance, e.IsPaid, e.Remarks, e.ID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return mess.ErrEntryNotFound
	}

	return nil
}

func (r *messRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM mess_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return mess.ErrEntryNotFound
	}

	return nil
}

func (r *messRepositoryImpl) ReplaceAll(ctx context.Context, entries []mess.Entry) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM mess_entries`); err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO mess_entries (id, project_id, week_start_date, week_end_date, worker_count, rate_per_worker,
				total_amount, other_expenses, other_expenses_desc, amount_paid, balance, is_paid, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		`, e.ID, e.ProjectID, e.WeekStartDate, e.WeekEndDate, e.WorkerCount, e.RatePerWorker,
			e.TotalAmount, e.OtherExpenses, e.OtherExpensesDesc, e.AmountPaid, e.Balance, e.IsPaid, e.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
