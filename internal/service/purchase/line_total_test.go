package purchase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	qty := decimal.NewFromFloat(12.5)
	rate := decimal.NewFromInt(340)

	total, ok := LineTotal(&qty, &rate)
	assert.True(t, ok)
	assert.True(t, total.Equal(decimal.NewFromInt(4250)), "total = %s", total)

	// Fractional paise round to 2dp.
	qty = decimal.NewFromFloat(3.333)
	rate = decimal.NewFromFloat(99.99)
	total, ok = LineTotal(&qty, &rate)
	assert.True(t, ok)
	assert.True(t, total.Equal(decimal.NewFromFloat(333.27)), "total = %s", total)
}

func TestLineTotalLumpSum(t *testing.T) {
	rate := decimal.NewFromInt(340)

	_, ok := LineTotal(nil, &rate)
	assert.False(t, ok)

	_, ok = LineTotal(&rate, nil)
	assert.False(t, ok)

	_, ok = LineTotal(nil, nil)
	assert.False(t, ok)
}
