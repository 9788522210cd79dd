package mess

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekEndDate(t *testing.T) {
	end, err := WeekEndDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-07", end)

	// Month boundary
	end, err = WeekEndDate("2024-01-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-04", end)

	_, err = WeekEndDate("not-a-date")
	assert.Error(t, err)
}

func TestTotalAmount(t *testing.T) {
	total := TotalAmount(32, decimal.NewFromInt(750))
	assert.True(t, total.Equal(decimal.NewFromInt(24000)), "total = %s", total)

	assert.True(t, TotalAmount(0, decimal.NewFromInt(750)).IsZero())
}

func TestBalance(t *testing.T) {
	// 32 workers at 750 with 535 of extras, fully paid against the
	// headcount bill: the extras remain outstanding.
	total := TotalAmount(32, decimal.NewFromInt(750))
	balance := Balance(total, decimal.NewFromInt(535), decimal.NewFromInt(24000))
	assert.True(t, balance.Equal(decimal.NewFromInt(535)), "balance = %s", balance)

	// Overpayment goes negative.
	balance = Balance(decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(1200))
	assert.True(t, balance.Equal(decimal.NewFromInt(-200)))
}
