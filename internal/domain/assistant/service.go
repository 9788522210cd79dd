package assistant

import "context"

type AssistantService interface {
	// GenerateEstimate turns a plain-language scope description into a
	// structured cost estimate. Fails loudly when the model is down.
	GenerateEstimate(ctx context.Context, req EstimateRequest) (EstimateResponse, error)
	// Chat answers a site-management question. Degrades to a canned
	// offline reply instead of failing.
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
