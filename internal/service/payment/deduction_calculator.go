package payment

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

// SumKharchiForMonth totals a worker's daily payouts that fall inside
// the settlement month. Month membership is a date-prefix match.
func SumKharchiForMonth(entries []kharchi.Entry, workerID, month string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.WorkerID == workerID && validator.DateInMonth(e.Date, month) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SumAdvancesForMonth totals a worker's advances dated inside the
// settlement month.
func SumAdvancesForMonth(advances []advance.Advance, workerID, month string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range advances {
		if a.WorkerID == workerID && validator.DateInMonth(a.Date, month) {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// NetPayable settles a worker's month:
//
//	net = workAmount - messDeduction - kharchiDeduction - advanceDeduction
//
// The result may be negative; the site carries the debt forward rather
// than clamping it.
func NetPayable(workAmount, messDeduction, kharchiDeduction, advanceDeduction decimal.Decimal) decimal.Decimal {
	return workAmount.Sub(messDeduction).Sub(kharchiDeduction).Sub(advanceDeduction)
}
