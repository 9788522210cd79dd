package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill - A client bill raised against a project for a billing month
type Bill struct {
	ID           string
	ProjectID    string
	SerialNo     *string
	BillNo       *string
	WorkNature   *string
	BillingMonth string // "YYYY-MM"
	Amount       decimal.Decimal
	GSTRate      decimal.Decimal
	GSTAmount    decimal.Decimal
	GrandTotal   decimal.Decimal
	CertifyDate  *string // ISO "YYYY-MM-DD"
	Remarks      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClientPayment - Money received from a client against a project
type ClientPayment struct {
	ID          string
	ProjectID   string
	Date        string // ISO "YYYY-MM-DD"
	Amount      decimal.Decimal
	PaymentMode *string
	Remarks     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
