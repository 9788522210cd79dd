package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/ledger"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
)

// The rollups below are total functions over in-memory slices: they
// tolerate empty inputs, orphaned project ids and zero rows, and never
// return an error.

func inScope(projectID, scope string) bool {
	return strings.EqualFold(scope, ledger.ScopeAll) || projectID == scope
}

// billTotal prefers the stored grand total and falls back to the base
// amount for legacy rows imported before GST fields existed.
func billTotal(b billing.Bill) decimal.Decimal {
	if b.GrandTotal.IsZero() {
		return b.Amount
	}
	return b.GrandTotal
}

// Receivables rolls up billed vs received per project. Projects with no
// activity still get a row, flagged "Paid" because nothing is owed.
func Receivables(projects []project.Project, bills []billing.Bill, payments []billing.ClientPayment) []ledger.ReceivableSummary {
	billed := make(map[string]decimal.Decimal)
	for _, b := range bills {
		billed[b.ProjectID] = billed[b.ProjectID].Add(billTotal(b))
	}
	received := make(map[string]decimal.Decimal)
	for _, p := range payments {
		received[p.ProjectID] = received[p.ProjectID].Add(p.Amount)
	}

	summaries := make([]ledger.ReceivableSummary, 0, len(projects))
	for _, p := range projects {
		balance := billed[p.ID].Sub(received[p.ID])
		status := ledger.StatusPaid
		if balance.IsPositive() {
			status = ledger.StatusOutstanding
		}
		summaries = append(summaries, ledger.ReceivableSummary{
			ProjectID:     p.ID,
			ProjectName:   p.Name,
			TotalBilled:   billed[p.ID],
			TotalReceived: received[p.ID],
			Balance:       balance,
			Status:        status,
		})
	}

	return summaries
}

// Trend groups bill grand totals by billing month.
func Trend(bills []billing.Bill, descending bool) []ledger.TrendPoint {
	totals := make(map[string]decimal.Decimal)
	for _, b := range bills {
		totals[b.BillingMonth] = totals[b.BillingMonth].Add(billTotal(b))
	}

	points := make([]ledger.TrendPoint, 0, len(totals))
	for month, total := range totals {
		points = append(points, ledger.TrendPoint{Month: month, Total: total})
	}

	// ISO month keys sort correctly as strings.
	sort.Slice(points, func(i, j int) bool {
		if descending {
			return points[i].Month > points[j].Month
		}
		return points[i].Month < points[j].Month
	})

	return points
}

// ProfitAndLoss computes the cost rollup for one scope:
//
//	material    = purchases
//	labor       = kharchi + advances + settled net pay + mess payouts
//	operational = material + labor
//	net profit  = (received - gst liability) - operational
func ProfitAndLoss(
	scope string,
	purchases []purchase.Purchase,
	kharchiEntries []kharchi.Entry,
	advances []advance.Advance,
	workerPayments []payment.Record,
	messEntries []mess.Entry,
	bills []billing.Bill,
	clientPayments []billing.ClientPayment,
) ledger.ProfitLossSummary {
	material := decimal.Zero
	for _, p := range purchases {
		if inScope(p.ProjectID, scope) {
			material = material.Add(p.TotalAmount)
		}
	}

	labor := decimal.Zero
	for _, k := range kharchiEntries {
		if inScope(k.ProjectID, scope) {
			labor = labor.Add(k.Amount)
		}
	}
	for _, a := range advances {
		if inScope(a.ProjectID, scope) {
			labor = labor.Add(a.Amount)
		}
	}
	for _, w := range workerPayments {
		if inScope(w.ProjectID, scope) {
			labor = labor.Add(w.NetPayable)
		}
	}
	for _, m := range messEntries {
		if inScope(m.ProjectID, scope) {
			labor = labor.Add(m.AmountPaid)
		}
	}

	gstLiability := decimal.Zero
	for _, b := range bills {
		if inScope(b.ProjectID, scope) {
			gstLiability = gstLiability.Add(b.GSTAmount)
		}
	}

	received := decimal.Zero
	for _, c := range clientPayments {
		if inScope(c.ProjectID, scope) {
			received = received.Add(c.Amount)
		}
	}

	operational := material.Add(labor)

	return ledger.ProfitLossSummary{
		Scope:           scope,
		MaterialCost:    material,
		LaborCost:       labor,
		OperationalCost: operational,
		TotalReceived:   received,
		GSTLiability:    gstLiability,
		NetProfit:       received.Sub(gstLiability).Sub(operational),
	}
}

// GSTChecklist lists each project's GST position for one exact billing
// month. Projects without a bill that month are omitted.
func GSTChecklist(projects []project.Project, bills []billing.Bill, month string, projectID string) []ledger.GSTChecklistRow {
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}

	byProject := make(map[string]*ledger.GSTChecklistRow)
	var order []string
	for _, b := range bills {
		if b.BillingMonth != month {
			continue
		}
		if projectID != "" && b.ProjectID != projectID {
			continue
		}
		row, ok := byProject[b.ProjectID]
		if !ok {
			row = &ledger.GSTChecklistRow{
				ProjectID:   b.ProjectID,
				ProjectName: names[b.ProjectID],
			}
			byProject[b.ProjectID] = row
			order = append(order, b.ProjectID)
		}
		row.BillCount++
		row.BaseAmount = row.BaseAmount.Add(b.Amount)
		row.GSTAmount = row.GSTAmount.Add(b.GSTAmount)
		row.GrandTotal = row.GrandTotal.Add(billTotal(b))
	}

	rows := make([]ledger.GSTChecklistRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byProject[id])
	}

	return rows
}
