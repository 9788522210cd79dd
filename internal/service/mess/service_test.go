package mess

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
)

type entryRepoStub struct {
	entries map[string]mess.Entry
}

func newEntryRepoStub(entries ...mess.Entry) *entryRepoStub {
	stub := &entryRepoStub{entries: make(map[string]mess.Entry)}
	for _, e := range entries {
		stub.entries[e.ID] = e
	}
	return stub
}

func (r *entryRepoStub) Create(_ context.Context, e mess.Entry) (mess.Entry, error) {
	r.entries[e.ID] = e
	return e, nil
}

func (r *entryRepoStub) GetByID(_ context.Context, id string) (mess.Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return mess.Entry{}, mess.ErrEntryNotFound
	}
	return e, nil
}

func (r *entryRepoStub) List(_ context.Context) ([]mess.Entry, error) {
	entries := make([]mess.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *entryRepoStub) Update(_ context.Context, e mess.Entry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return mess.ErrEntryNotFound
	}
	r.entries[e.ID] = e
	return nil
}

func (r *entryRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := r.entries[id]; !ok {
		return mess.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *entryRepoStub) ReplaceAll(_ context.Context, entries []mess.Entry) error {
	r.entries = make(map[string]mess.Entry)
	for _, e := range entries {
		r.entries[e.ID] = e
	}
	return nil
}

func str(s string) *string { return &s }

func weekEntry(id string) mess.Entry {
	return mess.Entry{
		ID:            id,
		ProjectID:     "p1",
		WeekStartDate: "2024-01-01",
		WeekEndDate:   "2024-01-07",
		WorkerCount:   10,
		RatePerWorker: decimal.NewFromInt(750),
		TotalAmount:   decimal.NewFromInt(7500),
		Balance:       decimal.NewFromInt(7500),
	}
}

func TestUpdateEntryEndDateEditableOnItsOwn(t *testing.T) {
	repo := newEntryRepoStub(weekEntry("m1"))
	svc := NewMessService(repo)

	// The mess closed three days early; only the end date moves.
	updated, err := svc.UpdateEntry(context.Background(), mess.UpdateEntryRequest{
		ID:          "m1",
		WeekEndDate: str("2024-01-04"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", updated.WeekStartDate)
	assert.Equal(t, "2024-01-04", updated.WeekEndDate)

	stored, err := repo.GetByID(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-04", stored.WeekEndDate)
}

func TestUpdateEntryStartChangeRederivesEndDate(t *testing.T) {
	repo := newEntryRepoStub(weekEntry("m1"))
	svc := NewMessService(repo)

	// A moved start wins over the end date sent alongside it.
	updated, err := svc.UpdateEntry(context.Background(), mess.UpdateEntryRequest{
		ID:            "m1",
		WeekStartDate: str("2024-01-08"),
		WeekEndDate:   str("2024-01-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", updated.WeekStartDate)
	assert.Equal(t, "2024-01-14", updated.WeekEndDate)
}

func TestUpdateEntryUnchangedStartKeepsEndDateEdit(t *testing.T) {
	repo := newEntryRepoStub(weekEntry("m1"))
	svc := NewMessService(repo)

	// Resubmitting the stored start does not clobber a custom end date.
	updated, err := svc.UpdateEntry(context.Background(), mess.UpdateEntryRequest{
		ID:            "m1",
		WeekStartDate: str("2024-01-01"),
		WeekEndDate:   str("2024-01-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", updated.WeekEndDate)
}

func TestUpdateEntryValidatesEndDate(t *testing.T) {
	repo := newEntryRepoStub(weekEntry("m1"))
	svc := NewMessService(repo)

	_, err := svc.UpdateEntry(context.Background(), mess.UpdateEntryRequest{
		ID:          "m1",
		WeekEndDate: str("next friday"),
	})
	assert.Error(t, err)
}
