package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
)

// Project - A construction site / contract the ledger rolls up against.
// CompletionPercentage is a manual progress figure, 0 to 100.
type Project struct {
	ID                   string
	Name                 string
	ClientName           *string
	Location             *string
	StartDate            *string // ISO "YYYY-MM-DD"
	CompletionDate       *string // ISO "YYYY-MM-DD"
	Budget               decimal.Decimal
	Spent                decimal.Decimal
	CompletionPercentage int
	Status               Status
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
