package secondary

import (
	"context"
	"io"

	"github.com/example/firmos/internal/models"
)

// Chat roles
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of an advisory conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompleter defines the secondary port for the advisory chat model.
type ChatCompleter interface {
	// Complete returns the model's reply to the conversation under the
	// given system instruction.
	Complete(ctx context.Context, system string, messages []ChatMessage) (string, error)
}

// SnapshotCache defines the secondary port for the local durable cache.
// It holds one blob: the last known snapshot of every collection.
type SnapshotCache interface {
	// Load returns the cached snapshot, or models.ErrNotFound if none exists.
	Load(ctx context.Context) (*models.Snapshot, error)

	// Save replaces the cached snapshot.
	Save(ctx context.Context, snapshot *models.Snapshot) error
}

// ReportWriter defines the secondary port for spreadsheet exports.
type ReportWriter interface {
	// WriteReport renders the report to w.
	WriteReport(w io.Writer, report *Report) error
}
