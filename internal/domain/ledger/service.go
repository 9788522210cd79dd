package ledger

import "context"

type LedgerService interface {
	// ProjectReceivables rolls up billed vs received for every project.
	ProjectReceivables(ctx context.Context) ([]ReceivableSummary, error)
	// MonthlyTrend groups bill grand totals by billing month. Ascending
	// order feeds charts, descending feeds tables.
	MonthlyTrend(ctx context.Context, descending bool) ([]TrendPoint, error)
	// ProfitAndLoss computes the expense rollup for a project id, or for
	// everything when scope is "All".
	ProfitAndLoss(ctx context.Context, scope string) (ProfitLossSummary, error)
	// GSTChecklist lists each project's GST position for one exact
	// billing month, optionally narrowed to a single project.
	GSTChecklist(ctx context.Context, month string, projectID string) ([]GSTChecklistRow, error)
}
