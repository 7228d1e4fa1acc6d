package api

import (
	"encoding/json"
	"net/http"

	"github.com/example/firmos/internal/app"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

const invalidMessages = "Invalid messages format"

// handleChat answers the advisory chat. Failures, including an unreadable
// body, come back as reply content; only a missing or non-array
// conversation is an error.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.svc.Advisor == nil || !s.svc.Advisor.Configured() {
		writeJSON(w, http.StatusOK, primary.ChatResponse{Content: app.NotConfiguredReply})
		return
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusOK, app.ErrorReply(err))
		return
	}

	// A body that is not an object carries no messages.
	var body struct {
		Messages json.RawMessage `json:"messages"`
		Context  json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		writeError(w, http.StatusBadRequest, invalidMessages)
		return
	}

	var messages []secondary.ChatMessage
	if len(body.Messages) == 0 || body.Messages[0] != '[' || json.Unmarshal(body.Messages, &messages) != nil {
		writeError(w, http.StatusBadRequest, invalidMessages)
		return
	}

	resp := s.svc.Advisor.Chat(r.Context(), primary.ChatRequest{Messages: messages, Context: body.Context})
	writeJSON(w, http.StatusOK, resp)
}
