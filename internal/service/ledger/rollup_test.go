package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/ledger"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/project"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bill(projectID, month, amount, gstRate string) billing.Bill {
	a := dec(amount)
	r := dec(gstRate)
	gst := a.Mul(r).Div(decimal.NewFromInt(100)).Round(2)
	return billing.Bill{
		ProjectID:    projectID,
		BillingMonth: month,
		Amount:       a,
		GSTRate:      r,
		GSTAmount:    gst,
		GrandTotal:   a.Add(gst),
	}
}

func TestReceivables(t *testing.T) {
	projects := []project.Project{{ID: "p1", Name: "Tower A"}, {ID: "p2", Name: "Tower B"}}
	bills := []billing.Bill{bill("p1", "2024-01", "50000", "18")}
	payments := []billing.ClientPayment{{ProjectID: "p1", Amount: dec("40000")}}

	summaries := Receivables(projects, bills, payments)
	require.Len(t, summaries, 2)

	assert.True(t, summaries[0].TotalBilled.Equal(dec("59000")), "billed = %s", summaries[0].TotalBilled)
	assert.True(t, summaries[0].TotalReceived.Equal(dec("40000")))
	assert.True(t, summaries[0].Balance.Equal(dec("19000")))
	assert.Equal(t, ledger.StatusOutstanding, summaries[0].Status)

	// No activity means nothing owed.
	assert.True(t, summaries[1].TotalBilled.IsZero())
	assert.Equal(t, ledger.StatusPaid, summaries[1].Status)
}

func TestReceivablesFullyPaid(t *testing.T) {
	projects := []project.Project{{ID: "p1", Name: "Tower A"}}
	bills := []billing.Bill{bill("p1", "2024-01", "10000", "0")}
	payments := []billing.ClientPayment{{ProjectID: "p1", Amount: dec("10000")}}

	summaries := Receivables(projects, bills, payments)
	require.Len(t, summaries, 1)
	assert.Equal(t, ledger.StatusPaid, summaries[0].Status)
}

func TestReceivablesFallsBackToAmount(t *testing.T) {
	projects := []project.Project{{ID: "p1", Name: "Tower A"}}
	bills := []billing.Bill{{ProjectID: "p1", BillingMonth: "2024-01", Amount: dec("5000")}}

	summaries := Receivables(projects, bills, nil)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].TotalBilled.Equal(dec("5000")))
}

func TestTrendOrdering(t *testing.T) {
	bills := []billing.Bill{
		bill("p1", "2024-02", "100", "0"),
		bill("p1", "2024-01", "200", "0"),
		bill("p2", "2024-02", "300", "0"),
	}

	asc := Trend(bills, false)
	require.Len(t, asc, 2)
	assert.Equal(t, "2024-01", asc[0].Month)
	assert.True(t, asc[1].Total.Equal(dec("400")))

	desc := Trend(bills, true)
	assert.Equal(t, "2024-02", desc[0].Month)
}

func TestTrendEmpty(t *testing.T) {
	assert.Empty(t, Trend(nil, false))
}

func TestProfitAndLossAllScope(t *testing.T) {
	purchases := []purchase.Purchase{{ProjectID: "p1", TotalAmount: dec("10000")}}
	kharchiEntries := []kharchi.Entry{{ProjectID: "p1", Amount: dec("1000")}}
	advances := []advance.Advance{{ProjectID: "p1", Amount: dec("2000")}}
	workerPayments := []payment.Record{{ProjectID: "p1", NetPayable: dec("3000")}}
	messEntries := []mess.Entry{{ProjectID: "p1", AmountPaid: dec("4000")}}
	bills := []billing.Bill{bill("p1", "2024-01", "50000", "18")}
	clientPayments := []billing.ClientPayment{{ProjectID: "p1", Amount: dec("59000")}}

	pl := ProfitAndLoss(ledger.ScopeAll, purchases, kharchiEntries, advances, workerPayments, messEntries, bills, clientPayments)

	assert.True(t, pl.MaterialCost.Equal(dec("10000")))
	assert.True(t, pl.LaborCost.Equal(dec("10000")))
	assert.True(t, pl.OperationalCost.Equal(dec("20000")))
	assert.True(t, pl.GSTLiability.Equal(dec("9000")))
	// (59000 - 9000) - 20000
	assert.True(t, pl.NetProfit.Equal(dec("30000")), "net = %s", pl.NetProfit)
}

func TestProfitAndLossScopeFilters(t *testing.T) {
	purchases := []purchase.Purchase{
		{ProjectID: "p1", TotalAmount: dec("10000")},
		{ProjectID: "p2", TotalAmount: dec("7000")},
	}

	pl := ProfitAndLoss("p2", purchases, nil, nil, nil, nil, nil, nil)
	assert.True(t, pl.MaterialCost.Equal(dec("7000")))

	// Scope matching is case-insensitive on the all sentinel.
	pl = ProfitAndLoss("ALL", purchases, nil, nil, nil, nil, nil, nil)
	assert.True(t, pl.MaterialCost.Equal(dec("17000")))
}

func TestProfitAndLossNegativeNetPayableReducesLabor(t *testing.T) {
	workerPayments := []payment.Record{{ProjectID: "p1", NetPayable: dec("-500")}}

	pl := ProfitAndLoss(ledger.ScopeAll, nil, nil, nil, workerPayments, nil, nil, nil)
	assert.True(t, pl.LaborCost.Equal(dec("-500")))
}

func TestGSTChecklist(t *testing.T) {
	projects := []project.Project{{ID: "p1", Name: "Tower A"}, {ID: "p2", Name: "Tower B"}}
	bills := []billing.Bill{
		bill("p1", "2024-01", "50000", "18"),
		bill("p1", "2024-01", "10000", "18"),
		bill("p1", "2024-02", "99999", "18"),
		bill("p2", "2024-01", "20000", "5"),
	}

	rows := GSTChecklist(projects, bills, "2024-01", "")
	require.Len(t, rows, 2)

	assert.Equal(t, "Tower A", rows[0].ProjectName)
	assert.Equal(t, 2, rows[0].BillCount)
	assert.True(t, rows[0].BaseAmount.Equal(dec("60000")))
	assert.True(t, rows[0].GSTAmount.Equal(dec("10800")))
	assert.True(t, rows[0].GrandTotal.Equal(dec("70800")))

	// Narrowed to one project.
	rows = GSTChecklist(projects, bills, "2024-01", "p2")
	require.Len(t, rows, 1)
	assert.Equal(t, "p2", rows[0].ProjectID)
}

func TestGSTChecklistExactMonthOnly(t *testing.T) {
	projects := []project.Project{{ID: "p1", Name: "Tower A"}}
	bills := []billing.Bill{bill("p1", "2024-11", "1000", "18")}

	assert.Empty(t, GSTChecklist(projects, bills, "2024-1", ""))
	assert.Len(t, GSTChecklist(projects, bills, "2024-11", ""), 1)
}
