package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/assistant"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/response"
)

type AssistantHandler interface {
	Estimate(w http.ResponseWriter, r *http.Request)
	Chat(w http.ResponseWriter, r *http.Request)
}

type AssistantHandlerImpl struct {
	assistantService assistant.AssistantService
}

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &AssistantHandlerImpl{assistantService: assistantService}
}

// Estimate implements AssistantHandler.
func (h *AssistantHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	var estimateReq assistant.EstimateRequest

	if err := json.NewDecoder(r.Body).Decode(&estimateReq); err != nil {
		slog.Error("Estimate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	estimate, err := h.assistantService.GenerateEstimate(r.Context(), estimateReq)
	if err != nil {
		slog.Error("Estimate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, estimate)
}

// Chat implements AssistantHandler.
func (h *AssistantHandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	var chatReq assistant.ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil {
		slog.Error("Chat decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reply, err := h.assistantService.Chat(r.Context(), chatReq)
	if err != nil {
		slog.Error("Chat service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reply)
}
