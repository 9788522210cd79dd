package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/execution"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type ExecutionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ExecutionHandlerImpl struct {
	executionService execution.ExecutionService
}

func NewExecutionHandler(executionService execution.ExecutionService) ExecutionHandler {
	return &ExecutionHandlerImpl{executionService: executionService}
}

// Create implements ExecutionHandler.
func (h *ExecutionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq execution.CreateLevelRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create execution level decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.executionService.CreateLevel(r.Context(), createReq)
	if err != nil {
		slog.Error("Create execution level service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Execution level created successfully", execution.ToResponse(created))
}

// List implements ExecutionHandler.
func (h *ExecutionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	levels, err := h.executionService.ListLevels(r.Context(), r.URL.Query().Get("project_id"))
	if err != nil {
		slog.Error("List execution levels service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, levels)
}

// Update implements ExecutionHandler.
func (h *ExecutionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq execution.UpdateLevelRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update execution level decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.executionService.UpdateLevel(r.Context(), updateReq); err != nil {
		slog.Error("Update execution level service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Execution level updated successfully", nil)
}

// Delete implements ExecutionHandler.
func (h *ExecutionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.executionService.DeleteLevel(r.Context(), id); err != nil {
		slog.Error("Delete execution level service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Execution level deleted successfully", nil)
}
