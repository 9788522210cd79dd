package purchase

import "github.com/shopspring/decimal"

// LineTotal derives a purchase line's total from quantity * rate, rounded
// to 2 decimal places. The second return is false when either side is
// missing, i.e. a lump-sum line whose caller-supplied total stands.
func LineTotal(quantity, rate *decimal.Decimal) (decimal.Decimal, bool) {
	if quantity == nil || rate == nil {
		return decimal.Zero, false
	}
	return quantity.Mul(*rate).Round(2), true
}
