package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/kharchi"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type KharchiHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type KharchiHandlerImpl struct {
	kharchiService kharchi.KharchiService
}

func NewKharchiHandler(kharchiService kharchi.KharchiService) KharchiHandler {
	return &KharchiHandlerImpl{kharchiService: kharchiService}
}

// Save implements KharchiHandler. The sheet posts a batch; entries that
// collide on (worker, date) overwrite the previous amount.
func (h *KharchiHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq kharchi.SaveEntriesRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save kharchi decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entries, err := h.kharchiService.SaveEntries(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save kharchi service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Kharchi entries saved successfully", entries)
}

// List implements KharchiHandler.
func (h *KharchiHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	entries, err := h.kharchiService.ListEntries(r.Context(), query.Get("worker_id"), query.Get("project_id"), query.Get("month"))
	if err != nil {
		slog.Error("List kharchi service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Delete implements KharchiHandler.
func (h *KharchiHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.kharchiService.DeleteEntry(r.Context(), id); err != nil {
		slog.Error("Delete kharchi service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Kharchi entry deleted successfully", nil)
}
