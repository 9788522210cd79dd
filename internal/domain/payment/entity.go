package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record - A worker's monthly settlement. NetPayable is derived:
//
//	net = workAmount - messDeduction - kharchiDeduction - advanceDeduction
//
// and may go negative when deductions outrun earnings. At most one record
// exists per (worker, month); saving a batch replaces whatever that pair held.
type Record struct {
	ID               string
	ProjectID        string
	WorkerID         string
	Month            string // "YYYY-MM"
	WorkAmount       decimal.Decimal
	MessDeduction    decimal.Decimal
	KharchiDeduction decimal.Decimal
	AdvanceDeduction decimal.Decimal
	NetPayable       decimal.Decimal
	IsPaid           bool
	PaymentDate      *string // ISO "YYYY-MM-DD"
	Remarks          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
