package kharchi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
)

func entry(workerID, date, amount string) kharchi.Entry {
	return kharchi.Entry{
		WorkerID: workerID,
		Date:     date,
		Amount:   decimal.RequireFromString(amount),
	}
}

func TestMergeAppendsNewEntries(t *testing.T) {
	existing := []kharchi.Entry{entry("w1", "2024-01-01", "100")}
	incoming := []kharchi.Entry{entry("w2", "2024-01-01", "200")}

	merged := Merge(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "w1", merged[0].WorkerID)
	assert.Equal(t, "w2", merged[1].WorkerID)
}

func TestMergeReplacesInPlace(t *testing.T) {
	existing := []kharchi.Entry{
		entry("w1", "2024-01-01", "100"),
		entry("w1", "2024-01-02", "150"),
	}
	incoming := []kharchi.Entry{entry("w1", "2024-01-01", "300")}

	merged := Merge(existing, incoming)

	require.Len(t, merged, 2)
	assert.True(t, merged[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "2024-01-01", merged[0].Date)
	assert.True(t, merged[1].Amount.Equal(decimal.NewFromInt(150)))
}

func TestMergeKeepsExistingIDOnReplace(t *testing.T) {
	old := entry("w1", "2024-01-01", "100")
	old.ID = "existing-id"
	incoming := []kharchi.Entry{entry("w1", "2024-01-01", "300")}

	merged := Merge([]kharchi.Entry{old}, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, "existing-id", merged[0].ID)
}

func TestMergeDropsNonPositiveAmounts(t *testing.T) {
	existing := []kharchi.Entry{entry("w1", "2024-01-01", "100")}
	incoming := []kharchi.Entry{
		entry("w1", "2024-01-01", "0"),
		entry("w2", "2024-01-01", "-50"),
	}

	merged := Merge(existing, incoming)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestMergeIsIdempotent(t *testing.T) {
	existing := []kharchi.Entry{entry("w1", "2024-01-01", "100")}
	incoming := []kharchi.Entry{
		entry("w1", "2024-01-02", "200"),
		entry("w2", "2024-01-01", "250"),
	}

	once := Merge(existing, incoming)
	twice := Merge(once, incoming)

	assert.Equal(t, once, twice)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	existing := []kharchi.Entry{entry("w1", "2024-01-01", "100")}
	incoming := []kharchi.Entry{entry("w1", "2024-01-01", "300")}

	_ = Merge(existing, incoming)

	assert.True(t, existing[0].Amount.Equal(decimal.NewFromInt(100)))
}
