package http

import (
	"log/slog"
	"net/http"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/ledger"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	Receivables(w http.ResponseWriter, r *http.Request)
	MonthlyTrend(w http.ResponseWriter, r *http.Request)
	ProfitAndLoss(w http.ResponseWriter, r *http.Request)
	GSTChecklist(w http.ResponseWriter, r *http.Request)
}

type LedgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &LedgerHandlerImpl{ledgerService: ledgerService}
}

// Receivables implements LedgerHandler.
func (h *LedgerHandlerImpl) Receivables(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.ledgerService.ProjectReceivables(r.Context())
	if err != nil {
		slog.Error("Receivables service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// MonthlyTrend implements LedgerHandler. ?order=desc flips to
// newest-month-first for tables.
func (h *LedgerHandlerImpl) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	descending := r.URL.Query().Get("order") == "desc"

	points, err := h.ledgerService.MonthlyTrend(r.Context(), descending)
	if err != nil {
		slog.Error("MonthlyTrend service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, points)
}

// ProfitAndLoss implements LedgerHandler. ?scope= takes a project id or
// "All"; empty means everything.
func (h *LedgerHandlerImpl) ProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerService.ProfitAndLoss(r.Context(), r.URL.Query().Get("scope"))
	if err != nil {
		slog.Error("ProfitAndLoss service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GSTChecklist implements LedgerHandler. ?month= is required, ?project_id=
// optionally narrows to one project.
func (h *LedgerHandlerImpl) GSTChecklist(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rows, err := h.ledgerService.GSTChecklist(r.Context(), query.Get("month"), query.Get("project_id"))
	if err != nil {
		slog.Error("GSTChecklist service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
