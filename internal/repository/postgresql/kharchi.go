package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type kharchiRepositoryImpl struct {
	db *database.DB
}

func NewKharchiRepository(db *database.DB) kharchi.EntryRepository {
	return &kharchiRepositoryImpl{db: db}
}

func (r *kharchiRepositoryImpl) List(ctx context.Context) ([]kharchi.Entry, error) {
	return r.list(ctx, `
		SELECT id, project_id, worker_id, date, amount, remarks, created_at, updated_at
		FROM kharchi_entries
		ORDER BY date
	`)
}

func (r *kharchiRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]kharchi.Entry, error) {
	return r.list(ctx, `
		SELECT id, project_id, worker_id, date, amount, remarks, created_at, updated_at
		FROM kharchi_entries
		WHERE worker_id = $1
		ORDER BY date
	`, workerID)
}

func (r *kharchiRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]kharchi.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []kharchi.Entry
	for rows.Next() {
		var e kharchi.Entry
		if err := rows.Scan(
			&e.ID, &e.ProjectID, &e.WorkerID, &e.Date, &e.Amount, &e.Remarks,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// UpsertBatch inserts entries, replacing the amount and remarks of any
// entry that already exists for the same (worker, date).
func (r *kharchiRepositoryImpl) UpsertBatch(ctx context.Context, entries []kharchi.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kharchi_entries (id, project_id, worker_id, date, amount, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (worker_id, date)
		DO UPDATE SET project_id = EXCLUDED.project_id, amount = EXCLUDED.amount, remarks = EXCLUDED.remarks, updated_at = NOW()
	`
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if _, err := q.Exec(ctx, query, e.ID, e.ProjectID, e.WorkerID, e.Date, e.Amount, e.Remarks); err != nil {
			return err
		}
	}

	return nil
}

func (r *kharchiRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM kharchi_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return kharchi.ErrEntryNotFound
	}

	return nil
}

func (r *kharchiRepositoryImpl) ReplaceAll(ctx context.Context, entries []kharchi.Entry) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM kharchi_entries`); err != nil {
		return err
	}
	for _, e := range entries {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO kharchi_entries (id, project_id, worker_id, date, amount, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		`, e.ID, e.ProjectID, e.WorkerID, e.Date, e.Amount, e.Remarks)
		if err != nil {
			return err
		}
	}

	return nil
}
