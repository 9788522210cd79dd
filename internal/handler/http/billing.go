package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/billing"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type BillingHandler interface {
	CreateBill(w http.ResponseWriter, r *http.Request)
	GetBill(w http.ResponseWriter, r *http.Request)
	ListBills(w http.ResponseWriter, r *http.Request)
	UpdateBill(w http.ResponseWriter, r *http.Request)
	DeleteBill(w http.ResponseWriter, r *http.Request)
	CreateClientPayment(w http.ResponseWriter, r *http.Request)
	ListClientPayments(w http.ResponseWriter, r *http.Request)
	UpdateClientPayment(w http.ResponseWriter, r *http.Request)
	DeleteClientPayment(w http.ResponseWriter, r *http.Request)
}

type BillingHandlerImpl struct {
	billingService billing.BillingService
}

func NewBillingHandler(billingService billing.BillingService) BillingHandler {
	return &BillingHandlerImpl{billingService: billingService}
}

// CreateBill implements BillingHandler.
func (h *BillingHandlerImpl) CreateBill(w http.ResponseWriter, r *http.Request) {
	var createReq billing.CreateBillRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create bill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.billingService.CreateBill(r.Context(), createReq)
	if err != nil {
		slog.Error("Create bill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bill created successfully", billing.ToBillResponse(created))
}

// GetBill implements BillingHandler.
func (h *BillingHandlerImpl) GetBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.billingService.GetBill(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, billing.ToBillResponse(found))
}

// ListBills implements BillingHandler.
func (h *BillingHandlerImpl) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingService.ListBills(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		slog.Error("List bills service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bills)
}

// UpdateBill implements BillingHandler.
func (h *BillingHandlerImpl) UpdateBill(w http.ResponseWriter, r *http.Request) {
	var updateReq billing.UpdateBillRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update bill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.billingService.UpdateBill(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update bill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill updated successfully", billing.ToBillResponse(updated))
}

// DeleteBill implements BillingHandler.
func (h *BillingHandlerImpl) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billingService.DeleteBill(r.Context(), id); err != nil {
		slog.Error("Delete bill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bill deleted successfully", nil)
}

// CreateClientPayment implements BillingHandler.
func (h *BillingHandlerImpl) CreateClientPayment(w http.ResponseWriter, r *http.Request) {
	var createReq billing.CreateClientPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create client payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.billingService.CreateClientPayment(r.Context(), createReq)
	if err != nil {
		slog.Error("Create client payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client payment recorded successfully", billing.ToClientPaymentResponse(created))
}

// ListClientPayments implements BillingHandler.
func (h *BillingHandlerImpl) ListClientPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.billingService.ListClientPayments(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		slog.Error("List client payments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payments)
}

// UpdateClientPayment implements BillingHandler.
func (h *BillingHandlerImpl) UpdateClientPayment(w http.ResponseWriter, r *http.Request) {
	var updateReq billing.UpdateClientPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update client payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.billingService.UpdateClientPayment(r.Context(), updateReq); err != nil {
		slog.Error("Update client payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client payment updated successfully", nil)
}

// DeleteClientPayment implements BillingHandler.
func (h *BillingHandlerImpl) DeleteClientPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.billingService.DeleteClientPayment(r.Context(), id); err != nil {
		slog.Error("Delete client payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client payment deleted successfully", nil)
}
