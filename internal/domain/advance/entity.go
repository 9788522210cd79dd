package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance - A lump-sum advance paid to a worker ahead of settlement
type Advance struct {
	ID          string
	ProjectID   string
	WorkerID    string
	Date        string // ISO "YYYY-MM-DD"
	Amount      decimal.Decimal
	PaidBy      *string
	PaymentMode *string // e.g. "Cash", "UPI", "Bank Transfer"
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
