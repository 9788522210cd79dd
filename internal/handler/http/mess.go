package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/mess"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type MessHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MessHandlerImpl struct {
	messService mess.MessService
}

func NewMessHandler(messService mess.MessService) MessHandler {
	return &MessHandlerImpl{messService: messService}
}

// Create implements MessHandler.
func (h *MessHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq mess.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create mess entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.messService.CreateEntry(r.Context(), createReq)
	if err != nil {
		slog.Error("Create mess entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Mess entry created successfully", mess.ToResponse(created))
}

// List implements MessHandler.
func (h *MessHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.messService.ListEntries(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		slog.Error("List mess entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Update implements MessHandler.
func (h *MessHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq mess.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update mess entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.messService.UpdateEntry(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update mess entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mess entry updated successfully", mess.ToResponse(updated))
}

// Delete implements MessHandler.
func (h *MessHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.messService.DeleteEntry(r.Context(), id); err != nil {
		slog.Error("Delete mess entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Mess entry deleted successfully", nil)
}
