package purchase

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase - A material purchase booked against a project
type Purchase struct {
	ID          string
	ProjectID   string
	Date        string // ISO "YYYY-MM-DD"
	Vendor      *string
	Item        string
	Unit        *string // e.g. "bags", "cft"
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
	TotalAmount decimal.Decimal
	PaidBy      *string
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
