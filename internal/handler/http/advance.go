package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/advance"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Create implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq advance.CreateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.advanceService.CreateAdvance(r.Context(), createReq)
	if err != nil {
		slog.Error("Create advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded successfully", advance.ToResponse(created))
}

// List implements AdvanceHandler.
func (h *AdvanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	advances, err := h.advanceService.ListAdvances(r.Context(), r.URL.Query().Get("worker_id"))
	if err != nil {
		slog.Error("List advances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// Update implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq advance.UpdateAdvanceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.advanceService.UpdateAdvance(r.Context(), updateReq); err != nil {
		slog.Error("Update advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance updated successfully", nil)
}

// Delete implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.advanceService.DeleteAdvance(r.Context(), id); err != nil {
		slog.Error("Delete advance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance deleted successfully", nil)
}
