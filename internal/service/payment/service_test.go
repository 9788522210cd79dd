package payment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
)

// recordRepoStub keeps settlements in memory with the same
// delete-then-insert contract as the SQL repository.
type recordRepoStub struct {
	records []payment.Record
}

func (r *recordRepoStub) ReplaceForWorkerMonths(_ context.Context, records []payment.Record) error {
	seen := make(map[[2]string]bool)
	for _, rec := range records {
		pair := [2]string{rec.WorkerID, rec.Month}
		if seen[pair] {
			continue
		}
		seen[pair] = true

		kept := make([]payment.Record, 0, len(r.records))
		for _, stored := range r.records {
			if stored.WorkerID != rec.WorkerID || stored.Month != rec.Month {
				kept = append(kept, stored)
			}
		}
		r.records = kept
	}

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		r.records = append(r.records, rec)
	}

	return nil
}

func (r *recordRepoStub) List(_ context.Context) ([]payment.Record, error) {
	return r.records, nil
}

func (r *recordRepoStub) ListByWorker(_ context.Context, workerID string) ([]payment.Record, error) {
	var out []payment.Record
	for _, rec := range r.records {
		if rec.WorkerID == workerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *recordRepoStub) ListByMonth(_ context.Context, month string) ([]payment.Record, error) {
	var out []payment.Record
	for _, rec := range r.records {
		if rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *recordRepoStub) Delete(_ context.Context, id string) error {
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return payment.ErrRecordNotFound
}

func (r *recordRepoStub) ReplaceAll(_ context.Context, records []payment.Record) error {
	r.records = records
	return nil
}

type workerRepoStub struct {
	workers map[string]worker.Worker
}

func (r *workerRepoStub) GetByID(_ context.Context, id string) (worker.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (r *workerRepoStub) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	r.workers[w.ID] = w
	return w, nil
}

func (r *workerRepoStub) GetByCode(_ context.Context, _ string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (r *workerRepoStub) List(_ context.Context) ([]worker.Worker, error) { return nil, nil }

func (r *workerRepoStub) Update(_ context.Context, _ worker.UpdateWorkerRequest) error { return nil }

func (r *workerRepoStub) Delete(_ context.Context, _ string) error { return nil }

func (r *workerRepoStub) ReplaceAll(_ context.Context, _ []worker.Worker) error { return nil }

type kharchiRepoStub struct {
	entries []kharchi.Entry
}

func (r *kharchiRepoStub) List(_ context.Context) ([]kharchi.Entry, error) { return r.entries, nil }

func (r *kharchiRepoStub) ListByWorker(_ context.Context, workerID string) ([]kharchi.Entry, error) {
	var out []kharchi.Entry
	for _, e := range r.entries {
		if e.WorkerID == workerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *kharchiRepoStub) UpsertBatch(_ context.Context, _ []kharchi.Entry) error { return nil }

func (r *kharchiRepoStub) Delete(_ context.Context, _ string) error { return nil }

func (r *kharchiRepoStub) ReplaceAll(_ context.Context, _ []kharchi.Entry) error { return nil }

type advanceRepoStub struct {
	advances []advance.Advance
}

func (r *advanceRepoStub) Create(_ context.Context, a advance.Advance) (advance.Advance, error) {
	r.advances = append(r.advances, a)
	return a, nil
}

func (r *advanceRepoStub) GetByID(_ context.Context, _ string) (advance.Advance, error) {
	return advance.Advance{}, advance.ErrAdvanceNotFound
}

func (r *advanceRepoStub) List(_ context.Context) ([]advance.Advance, error) {
	return r.advances, nil
}

func (r *advanceRepoStub) ListByWorker(_ context.Context, workerID string) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, a := range r.advances {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *advanceRepoStub) Update(_ context.Context, _ advance.UpdateAdvanceRequest) error { return nil }

func (r *advanceRepoStub) Delete(_ context.Context, _ string) error { return nil }

func (r *advanceRepoStub) ReplaceAll(_ context.Context, _ []advance.Advance) error { return nil }

func newSettlementService(records *recordRepoStub) payment.PaymentService {
	workers := &workerRepoStub{workers: map[string]worker.Worker{
		"w1": {ID: "w1", ProjectID: "p1", Code: "W-101", Name: "Ramesh"},
		"w2": {ID: "w2", ProjectID: "p1", Code: "W-102", Name: "Suresh"},
	}}
	kharchiEntries := &kharchiRepoStub{entries: []kharchi.Entry{
		{WorkerID: "w1", Date: "2024-01-07", Amount: decimal.NewFromInt(500)},
		{WorkerID: "w1", Date: "2024-01-14", Amount: decimal.NewFromInt(300)},
	}}
	advances := &advanceRepoStub{advances: []advance.Advance{
		{WorkerID: "w1", Date: "2024-01-10", Amount: decimal.NewFromInt(1000)},
	}}
	return NewPaymentService(records, workers, kharchiEntries, advances)
}

func TestSaveRecordsLastWriteWins(t *testing.T) {
	records := &recordRepoStub{}
	svc := newSettlementService(records)

	_, err := svc.SaveRecords(context.Background(), payment.SaveRecordsRequest{
		Records: []payment.RecordInput{{
			ProjectID:     "p1",
			WorkerID:      "w1",
			Month:         "2024-01",
			WorkAmount:    decimal.NewFromInt(10000),
			MessDeduction: decimal.NewFromInt(1200),
		}},
	})
	require.NoError(t, err)
	require.Len(t, records.records, 1)

	// Saving the same worker and month again replaces the settlement
	// instead of stacking a second one.
	responses, err := svc.SaveRecords(context.Background(), payment.SaveRecordsRequest{
		Records: []payment.RecordInput{{
			ProjectID:  "p1",
			WorkerID:   "w1",
			Month:      "2024-01",
			WorkAmount: decimal.NewFromInt(12000),
		}},
	})
	require.NoError(t, err)
	require.Len(t, records.records, 1)

	stored := records.records[0]
	assert.True(t, stored.WorkAmount.Equal(decimal.NewFromInt(12000)), "work = %s", stored.WorkAmount)
	assert.True(t, stored.MessDeduction.IsZero())
	assert.True(t, stored.KharchiDeduction.Equal(decimal.NewFromInt(800)), "kharchi = %s", stored.KharchiDeduction)
	assert.True(t, stored.AdvanceDeduction.Equal(decimal.NewFromInt(1000)), "advance = %s", stored.AdvanceDeduction)
	// net = 12000 - 0 - 800 - 1000
	assert.True(t, stored.NetPayable.Equal(decimal.NewFromInt(10200)), "net = %s", stored.NetPayable)

	require.Len(t, responses, 1)
	assert.True(t, responses[0].NetPayable.Equal(decimal.NewFromInt(10200)))
}

func TestSaveRecordsKeepsOtherWorkers(t *testing.T) {
	records := &recordRepoStub{}
	svc := newSettlementService(records)

	_, err := svc.SaveRecords(context.Background(), payment.SaveRecordsRequest{
		Records: []payment.RecordInput{
			{ProjectID: "p1", WorkerID: "w1", Month: "2024-01", WorkAmount: decimal.NewFromInt(10000)},
			{ProjectID: "p1", WorkerID: "w2", Month: "2024-01", WorkAmount: decimal.NewFromInt(8000)},
		},
	})
	require.NoError(t, err)
	require.Len(t, records.records, 2)

	// Re-settling w1 leaves w2's record alone.
	_, err = svc.SaveRecords(context.Background(), payment.SaveRecordsRequest{
		Records: []payment.RecordInput{
			{ProjectID: "p1", WorkerID: "w1", Month: "2024-01", WorkAmount: decimal.NewFromInt(11000)},
		},
	})
	require.NoError(t, err)
	require.Len(t, records.records, 2)

	byWorker, err := records.ListByWorker(context.Background(), "w2")
	require.NoError(t, err)
	require.Len(t, byWorker, 1)
	assert.True(t, byWorker[0].WorkAmount.Equal(decimal.NewFromInt(8000)))
}

func TestSaveRecordsUnknownWorker(t *testing.T) {
	records := &recordRepoStub{}
	svc := newSettlementService(records)

	_, err := svc.SaveRecords(context.Background(), payment.SaveRecordsRequest{
		Records: []payment.RecordInput{
			{ProjectID: "p1", WorkerID: "ghost", Month: "2024-01", WorkAmount: decimal.NewFromInt(1000)},
		},
	})
	assert.ErrorIs(t, err, payment.ErrWorkerNotFound)
	assert.Empty(t, records.records)
}
