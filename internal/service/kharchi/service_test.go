package kharchi

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/worker"
)

// ledgerRepoStub records what UpsertBatch was asked to write.
type ledgerRepoStub struct {
	entries  []kharchi.Entry
	upserted []kharchi.Entry
}

func (r *ledgerRepoStub) List(_ context.Context) ([]kharchi.Entry, error) {
	return r.entries, nil
}

func (r *ledgerRepoStub) ListByWorker(_ context.Context, workerID string) ([]kharchi.Entry, error) {
	var out []kharchi.Entry
	for _, e := range r.entries {
		if e.WorkerID == workerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *ledgerRepoStub) UpsertBatch(_ context.Context, entries []kharchi.Entry) error {
	r.upserted = entries
	return nil
}

func (r *ledgerRepoStub) Delete(_ context.Context, _ string) error { return nil }

func (r *ledgerRepoStub) ReplaceAll(_ context.Context, entries []kharchi.Entry) error {
	r.entries = entries
	return nil
}

type knownWorkersStub struct {
	ids map[string]bool
}

func (r *knownWorkersStub) GetByID(_ context.Context, id string) (worker.Worker, error) {
	if !r.ids[id] {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return worker.Worker{ID: id}, nil
}

func (r *knownWorkersStub) Create(_ context.Context, w worker.Worker) (worker.Worker, error) {
	return w, nil
}

func (r *knownWorkersStub) GetByCode(_ context.Context, _ string) (worker.Worker, error) {
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (r *knownWorkersStub) List(_ context.Context) ([]worker.Worker, error) { return nil, nil }

func (r *knownWorkersStub) Update(_ context.Context, _ worker.UpdateWorkerRequest) error { return nil }

func (r *knownWorkersStub) Delete(_ context.Context, _ string) error { return nil }

func (r *knownWorkersStub) ReplaceAll(_ context.Context, _ []worker.Worker) error { return nil }

func TestSaveEntriesAssignsIDsToNewEntries(t *testing.T) {
	stored := entry("w1", "2024-01-01", "100")
	stored.ID = "k-existing"
	repo := &ledgerRepoStub{entries: []kharchi.Entry{stored}}
	workers := &knownWorkersStub{ids: map[string]bool{"w1": true, "w2": true}}
	svc := NewKharchiService(repo, workers)

	responses, err := svc.SaveEntries(context.Background(), kharchi.SaveEntriesRequest{
		Entries: []kharchi.EntryInput{
			{ProjectID: "p1", WorkerID: "w1", Date: "2024-01-01", Amount: decimal.NewFromInt(300)},
			{ProjectID: "p1", WorkerID: "w2", Date: "2024-01-01", Amount: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)
	require.Len(t, responses, 2)

	// Every returned entry carries the id it is stored under.
	byWorker := make(map[string]kharchi.EntryResponse)
	for _, resp := range responses {
		assert.NotEmpty(t, resp.ID, "worker %s entry has no id", resp.WorkerID)
		byWorker[resp.WorkerID] = resp
	}
	assert.Equal(t, "k-existing", byWorker["w1"].ID)

	require.Len(t, repo.upserted, 2)
	for _, e := range repo.upserted {
		if e.WorkerID == "w2" {
			assert.Equal(t, byWorker["w2"].ID, e.ID)
		}
	}
}

func TestSaveEntriesRejectsUnknownWorker(t *testing.T) {
	repo := &ledgerRepoStub{}
	workers := &knownWorkersStub{ids: map[string]bool{"w1": true}}
	svc := NewKharchiService(repo, workers)

	_, err := svc.SaveEntries(context.Background(), kharchi.SaveEntriesRequest{
		Entries: []kharchi.EntryInput{
			{ProjectID: "p1", WorkerID: "ghost", Date: "2024-01-01", Amount: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, kharchi.ErrWorkerNotFound)
	assert.Empty(t, repo.upserted)
}

func TestSaveEntriesSkipsWriteForDroppedAmounts(t *testing.T) {
	repo := &ledgerRepoStub{}
	workers := &knownWorkersStub{ids: map[string]bool{"w1": true}}
	svc := NewKharchiService(repo, workers)

	responses, err := svc.SaveEntries(context.Background(), kharchi.SaveEntriesRequest{
		Entries: []kharchi.EntryInput{
			{ProjectID: "p1", WorkerID: "w1", Date: "2024-01-01", Amount: decimal.Zero},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, responses)
	assert.Empty(t, repo.upserted)
}
