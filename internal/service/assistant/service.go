package assistant

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/assistant"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/gemini"
)

const estimateSystemInstruction = "You are a construction cost estimator for Indian residential and commercial " +
	"projects. Break the described scope of work into line items with realistic market quantities and INR unit " +
	"prices. Use units like sqft, cum, kg, nos or lumpsum. Keep totals consistent with quantity times unit price."

const chatSystemInstruction = "You are a site management assistant for a construction contractor. Answer questions " +
	"about labour management, material procurement, billing with GST, and day-to-day site operations. Keep answers " +
	"short and practical."

const offlineReply = "The assistant is offline right now. Please try again in a little while."

var estimateSchema = &gemini.Schema{
	Type: "array",
	Items: &gemini.Schema{
		Type: "object",
		Properties: map[string]*gemini.Schema{
			"description": {Type: "string", Description: "what the line item covers"},
			"quantity":    {Type: "number"},
			"unit":        {Type: "string", Description: "sqft, cum, kg, nos or lumpsum"},
			"unit_price":  {Type: "number", Description: "price per unit in INR"},
			"total":       {Type: "number", Description: "quantity times unit_price"},
		},
		Required: []string{"description", "quantity", "unit", "unit_price", "total"},
	},
}

type AssistantServiceImpl struct {
	client *gemini.Client
}

func NewAssistantService(client *gemini.Client) assistant.AssistantService {
	return &AssistantServiceImpl{client: client}
}

func (s *AssistantServiceImpl) GenerateEstimate(ctx context.Context, req assistant.EstimateRequest) (assistant.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.EstimateResponse{}, err
	}

	raw, err := s.client.GenerateJSON(ctx, req.Description, estimateSystemInstruction, estimateSchema)
	if err != nil {
		return assistant.EstimateResponse{}, assistant.ErrEstimatorUnavailable
	}

	var items []assistant.EstimateItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return assistant.EstimateResponse{}, assistant.ErrEstimatorUnavailable
	}

	grandTotal := decimal.Zero
	for _, item := range items {
		grandTotal = grandTotal.Add(item.Total)
	}

	return assistant.EstimateResponse{Items: items, GrandTotal: grandTotal}, nil
}

func (s *AssistantServiceImpl) Chat(ctx context.Context, req assistant.ChatRequest) (assistant.ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.ChatResponse{}, err
	}

	history := make([]gemini.Content, 0, len(req.History))
	for _, m := range req.History {
		history = append(history, gemini.Content{
			Role:  m.Role,
			Parts: []gemini.Part{{Text: m.Text}},
		})
	}

	reply, err := s.client.Chat(ctx, history, req.Message, chatSystemInstruction)
	if err != nil {
		return assistant.ChatResponse{Reply: offlineReply}, nil
	}

	return assistant.ChatResponse{Reply: reply}, nil
}
