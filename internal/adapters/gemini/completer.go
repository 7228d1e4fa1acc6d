// Package gemini implements the advisory chat collaborator on Google GenAI.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/example/firmos/internal/ports/secondary"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Completer implements secondary.ChatCompleter with the Gemini API.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a Gemini chat completer.
func NewCompleter(ctx context.Context, apiKey, model string) (*Completer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Completer{client: client, model: model}, nil
}

// Model returns the configured model name.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the conversation under the system instruction and
// returns the first candidate's text.
func (c *Completer) Complete(ctx context.Context, system string, messages []secondary.ChatMessage) (string, error) {
	contents, err := toContents(messages)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return replyText(resp)
}

// toContents maps chat turns onto GenAI roles. The assistant speaks as
// the model.
func toContents(messages []secondary.ChatMessage) ([]*genai.Content, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages to send")
	}
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		var role genai.Role
		switch m.Role {
		case secondary.ChatRoleUser:
			role = genai.RoleUser
		case secondary.ChatRoleAssistant, string(genai.RoleModel):
			role = genai.RoleModel
		default:
			return nil, fmt.Errorf("unsupported chat role %q", m.Role)
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents, nil
}

func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty reply")
	}
	return text, nil
}

var _ secondary.ChatCompleter = (*Completer)(nil)
