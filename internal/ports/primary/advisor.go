package primary

import (
	"context"
	"encoding/json"

	"github.com/example/firmos/internal/ports/secondary"
)

// AdvisorService defines the primary port for the advisory chat.
// Failures are reported as reply content, never as errors, so a chat
// always renders a message.
type AdvisorService interface {
	// Configured reports whether a chat model is available.
	Configured() bool

	// Chat forwards the tail of the conversation with a trimmed firm
	// context and returns the model's reply.
	Chat(ctx context.Context, req ChatRequest) ChatResponse
}

// ChatRequest is a conversation plus optional caller-supplied context.
// When Context is empty the advisor builds it from the current snapshot.
type ChatRequest struct {
	Messages []secondary.ChatMessage `json:"messages"`
	Context  json.RawMessage         `json:"context,omitempty"`
}

// ChatResponse carries the advisor's reply.
type ChatResponse struct {
	Content string `json:"content"`
}
