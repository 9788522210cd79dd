package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateGST(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		rate      string
		wantGST   string
		wantGrand string
	}{
		{"standard 18 percent", "50000", "18", "9000", "59000"},
		{"zero rate", "50000", "0", "0", "50000"},
		{"fractional rounding", "1000.55", "18", "180.1", "1180.65"},
		{"half-up rounding", "333.33", "5", "16.67", "350"},
		{"negative amount coerced to zero", "-500", "18", "0", "0"},
		{"negative rate coerced to zero", "50000", "-18", "0", "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, _ := decimal.NewFromString(tt.amount)
			rate, _ := decimal.NewFromString(tt.rate)

			gst, grand := CalculateGST(amount, rate)

			assert.True(t, gst.Equal(decimal.RequireFromString(tt.wantGST)), "gst = %s", gst)
			assert.True(t, grand.Equal(decimal.RequireFromString(tt.wantGrand)), "grand = %s", grand)
		})
	}
}

func TestCalculateGSTGrandIsAlwaysAmountPlusGST(t *testing.T) {
	for _, amt := range []string{"0", "1", "999.99", "123456.78"} {
		for _, rate := range []string{"0", "5", "12", "18", "28"} {
			amount := decimal.RequireFromString(amt)
			gst, grand := CalculateGST(amount, decimal.RequireFromString(rate))
			assert.True(t, grand.Equal(amount.Add(gst)), "amount %s rate %s", amt, rate)
		}
	}
}

func TestSanitizeAmount(t *testing.T) {
	assert.True(t, SanitizeAmount(decimal.NewFromInt(-1)).IsZero())
	assert.True(t, SanitizeAmount(decimal.Zero).IsZero())
	assert.True(t, SanitizeAmount(decimal.NewFromInt(42)).Equal(decimal.NewFromInt(42)))
}
