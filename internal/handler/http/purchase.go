package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/purchase"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type PurchaseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandlerImpl struct {
	purchaseService purchase.PurchaseService
}

func NewPurchaseHandler(purchaseService purchase.PurchaseService) PurchaseHandler {
	return &PurchaseHandlerImpl{purchaseService: purchaseService}
}

// Create implements PurchaseHandler.
func (h *PurchaseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq purchase.CreatePurchaseRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create purchase decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.purchaseService.CreatePurchase(r.Context(), createReq)
	if err != nil {
		slog.Error("Create purchase service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Purchase recorded successfully", purchase.ToResponse(created))
}

// List implements PurchaseHandler.
func (h *PurchaseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.purchaseService.ListPurchases(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		slog.Error("List purchases service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, purchases)
}

// Update implements PurchaseHandler.
func (h *PurchaseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq purchase.UpdatePurchaseRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update purchase decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.purchaseService.UpdatePurchase(r.Context(), updateReq); err != nil {
		slog.Error("Update purchase service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Purchase updated successfully", nil)
}

// Delete implements PurchaseHandler.
func (h *PurchaseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.purchaseService.DeletePurchase(r.Context(), id); err != nil {
		slog.Error("Delete purchase service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Purchase deleted successfully", nil)
}
