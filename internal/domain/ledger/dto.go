package ledger

import (
	"github.com/shopspring/decimal"
)

// ScopeAll selects every project in rollups that take a project scope.
// Matching is case-insensitive ("All" and "ALL" both work).
const ScopeAll = "All"

// ReceivableStatus of a project's outstanding balance
type ReceivableStatus string

const (
	StatusOutstanding ReceivableStatus = "Outstanding"
	StatusPaid        ReceivableStatus = "Paid"
)

// ReceivableSummary - per-project billed vs received rollup
type ReceivableSummary struct {
	ProjectID     string           `json:"project_id"`
	ProjectName   string           `json:"project_name"`
	TotalBilled   decimal.Decimal  `json:"total_billed"`
	TotalReceived decimal.Decimal  `json:"total_received"`
	Balance       decimal.Decimal  `json:"balance"`
	Status        ReceivableStatus `json:"status"`
}

// TrendPoint - one billing month's total across the selected bills
type TrendPoint struct {
	Month string          `json:"month"` // "YYYY-MM"
	Total decimal.Decimal `json:"total"`
}

// ProfitLossSummary - the expense and profit rollup for one scope.
// LaborCost folds in kharchi, advances, settled worker payments and mess
// payouts; NetProfit nets received money against GST liability first.
type ProfitLossSummary struct {
	Scope           string          `json:"scope"` // project id or "All"
	MaterialCost    decimal.Decimal `json:"material_cost"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	OperationalCost decimal.Decimal `json:"operational_cost"`
	TotalReceived   decimal.Decimal `json:"total_received"`
	GSTLiability    decimal.Decimal `json:"gst_liability"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

// GSTChecklistRow - one project's GST position for an exact billing month
type GSTChecklistRow struct {
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	BillCount   int             `json:"bill_count"`
	BaseAmount  decimal.Decimal `json:"base_amount"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}
