package kharchi

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry - A daily pocket-money payout to a worker. At most one entry
// exists per (worker, date); saving again for the same day replaces it.
type Entry struct {
	ID        string
	ProjectID string
	WorkerID  string
	Date      string // ISO "YYYY-MM-DD"
	Amount    decimal.Decimal
	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
