package billing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SanitizeAmount coerces negative money inputs to zero. Register sheets
// arrive with stray minus signs and blank cells often enough that the
// ledger treats them all as zero rather than rejecting the row.
func SanitizeAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CalculateGST derives the GST amount and grand total for a bill:
//
//	gst   = amount * rate / 100, rounded half-up to 2 places
//	grand = amount + gst
//
// A zero rate yields gst 0 and grand == amount.
func CalculateGST(amount, rate decimal.Decimal) (gst, grand decimal.Decimal) {
	amount = SanitizeAmount(amount)
	rate = SanitizeAmount(rate)

	gst = amount.Mul(rate).Div(hundred).Round(2)
	grand = amount.Add(gst)
	return gst, grand
}
