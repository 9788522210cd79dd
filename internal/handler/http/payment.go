package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/payment"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type PaymentHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandlerImpl struct {
	paymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) PaymentHandler {
	return &PaymentHandlerImpl{paymentService: paymentService}
}

// Preview implements PaymentHandler. Computes deductions without saving so
// the sheet can show net payable as amounts are typed.
func (h *PaymentHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var previewReq payment.DeductionPreviewRequest

	if err := json.NewDecoder(r.Body).Decode(&previewReq); err != nil {
		slog.Error("Preview payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	preview, err := h.paymentService.PreviewDeductions(r.Context(), previewReq)
	if err != nil {
		slog.Error("Preview payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview)
}

// Save implements PaymentHandler.
func (h *PaymentHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq payment.SaveRecordsRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save payments decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.paymentService.SaveRecords(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker payments saved successfully", records)
}

// List implements PaymentHandler.
func (h *PaymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	records, err := h.paymentService.ListRecords(r.Context(), query.Get("worker_id"), query.Get("month"))
	if err != nil {
		slog.Error("List payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements PaymentHandler.
func (h *PaymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.paymentService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("Delete payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker payment deleted successfully", nil)
}
