package assistant

import (
	"github.com/shopspring/decimal"

	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/validator"
)

type EstimateRequest struct {
	Description string `json:"description"`
}

func (r *EstimateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EstimateItem - one line of a generated cost estimate
type EstimateItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

type EstimateResponse struct {
	Items      []EstimateItem  `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

type ChatMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

func (r *ChatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}
	for _, m := range r.History {
		if m.Role != "user" && m.Role != "model" {
			errs = append(errs, validator.ValidationError{Field: "history", Message: "role must be 'user' or 'model'"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
