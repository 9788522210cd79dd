package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snenterprise/sitebooks-backend-go/internal/config"
	"github.com/snenterprise/sitebooks-backend-go/internal/domain/assistant"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/gemini"
)

// An empty API key makes the client fail before any network call, which is
// exactly the degraded path these tests pin down.
func newOfflineService() assistant.AssistantService {
	client := gemini.NewClient(config.GeminiConfig{APIKey: "", Model: "gemini-2.5-flash"})
	return NewAssistantService(client)
}

func TestGenerateEstimate_FailsLoudlyWhenOffline(t *testing.T) {
	svc := newOfflineService()

	_, err := svc.GenerateEstimate(context.Background(), assistant.EstimateRequest{
		Description: "200 sqft brick wall with plaster",
	})
	assert.ErrorIs(t, err, assistant.ErrEstimatorUnavailable)
}

func TestGenerateEstimate_ValidatesDescription(t *testing.T) {
	svc := newOfflineService()

	_, err := svc.GenerateEstimate(context.Background(), assistant.EstimateRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, assistant.ErrEstimatorUnavailable)
}

func TestChat_DegradesToOfflineReply(t *testing.T) {
	svc := newOfflineService()

	resp, err := svc.Chat(context.Background(), assistant.ChatRequest{
		Message: "How much cement for a 10x10 slab?",
	})
	require.NoError(t, err)
	assert.Equal(t, offlineReply, resp.Reply)
}

func TestChat_ValidatesMessage(t *testing.T) {
	svc := newOfflineService()

	_, err := svc.Chat(context.Background(), assistant.ChatRequest{})
	assert.Error(t, err)
}

func TestChat_ValidatesHistoryRoles(t *testing.T) {
	svc := newOfflineService()

	_, err := svc.Chat(context.Background(), assistant.ChatRequest{
		Message: "hello",
		History: []assistant.ChatMessage{{Role: "system", Text: "nope"}},
	})
	assert.Error(t, err)
}
