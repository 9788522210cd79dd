package mess

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry - One week of the site mess register. TotalAmount and Balance are
// derived, never accepted from the caller:
//
//	total   = workerCount * ratePerWorker
//	balance = (total + otherExpenses) - amountPaid
type Entry struct {
	ID                string
	ProjectID         string
	WeekStartDate     string // ISO "YYYY-MM-DD"
	WeekEndDate       string // start + 6 days, derived
	WorkerCount       int
	RatePerWorker     decimal.Decimal
	TotalAmount       decimal.Decimal
	OtherExpenses     decimal.Decimal
	OtherExpensesDesc *string
	AmountPaid        decimal.Decimal
	Balance           decimal.Decimal
	IsPaid            bool
	Remarks           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
