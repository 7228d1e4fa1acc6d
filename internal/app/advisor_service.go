package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/observability"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

const (
	// ChatHistoryLimit is how many trailing messages reach the model.
	ChatHistoryLimit = 5

	// ChatRecentLogs is how many task logs the context carries.
	ChatRecentLogs = 10

	// NotConfiguredReply is returned when no chat model is configured.
	NotConfiguredReply = "AI Service is not configured. Please add your GEMINI_API_KEY to the environment to activate Firm Intelligence."
)

const advisorInstructions = `You are the Chief of Staff and strategic advisor for a law firm.
Give brutal, honest and strategic advice that stops financial bleeding and raises production.

Current firm data:
%s

Rules:
1. Be concise, direct and professional.
2. Ground every answer in the cashbox, burn rate and staff efficiency figures above.
3. Flag any staff member whose efficiency is below 1.0.
4. When burn is high, name specific cuts from the expense lines.
5. Never invent data that is not in the context.`

// AdvisorServiceImpl implements the AdvisorService interface.
type AdvisorServiceImpl struct {
	completer secondary.ChatCompleter
	snapshots primary.SnapshotService
	logger    *zap.Logger
	now       func() time.Time
}

// NewAdvisorService creates a new AdvisorService. A nil completer leaves
// the advisor unconfigured.
func NewAdvisorService(completer secondary.ChatCompleter, snapshots primary.SnapshotService, logger *zap.Logger) *AdvisorServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisorServiceImpl{
		completer: completer,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// Configured reports whether a chat model is available.
func (s *AdvisorServiceImpl) Configured() bool {
	return s.completer != nil
}

// Chat forwards the tail of the conversation with a trimmed firm context.
// Failures come back as reply content; nothing is retried.
func (s *AdvisorServiceImpl) Chat(ctx context.Context, req primary.ChatRequest) primary.ChatResponse {
	if !s.Configured() {
		observability.AdvisorRequests.WithLabelValues("unconfigured").Inc()
		return primary.ChatResponse{Content: NotConfiguredReply}
	}

	firmContext, err := s.buildContext(ctx, req.Context)
	if err != nil {
		observability.AdvisorRequests.WithLabelValues("error").Inc()
		s.logger.Error("advisor context failed", zap.Error(err))
		return ErrorReply(err)
	}

	messages := req.Messages
	if len(messages) > ChatHistoryLimit {
		messages = messages[len(messages)-ChatHistoryLimit:]
	}

	reply, err := s.completer.Complete(ctx, fmt.Sprintf(advisorInstructions, firmContext), messages)
	if err != nil {
		observability.AdvisorRequests.WithLabelValues("error").Inc()
		s.logger.Error("advisor completion failed", zap.Int("messages", len(messages)), zap.Error(err))
		return ErrorReply(err)
	}

	observability.AdvisorRequests.WithLabelValues("ok").Inc()
	return primary.ChatResponse{Content: reply}
}

// ErrorReply wraps a failure as reply content so the chat still renders it.
func ErrorReply(err error) primary.ChatResponse {
	return primary.ChatResponse{
		Content: fmt.Sprintf("Error: %s. Please check your connection or AI configuration.", err.Error()),
	}
}

// advisorEmployee is the slice of an employee the model sees.
type advisorEmployee struct {
	Name string  `json:"name"`
	Role string  `json:"role"`
	Cost float64 `json:"cost"`
}

// advisorClient is the slice of a client the model sees.
type advisorClient struct {
	Status            string    `json:"status"`
	LastCommunication time.Time `json:"lastCommunication"`
	RetainerFee       float64   `json:"retainerFee"`
}

// advisorContext is the trimmed firm data embedded in the system prompt.
type advisorContext struct {
	Employees  []advisorEmployee   `json:"employees"`
	Financials json.RawMessage     `json:"financials,omitempty"`
	Clients    json.RawMessage     `json:"clients,omitempty"`
	Logs       json.RawMessage     `json:"logs,omitempty"`
	Burn       *primary.BurnReport `json:"burn,omitempty"`
}

// callerContext is the context shape a client may send with a chat.
type callerContext struct {
	Employees []struct {
		Name       string  `json:"name"`
		Role       string  `json:"role"`
		HourlyCost float64 `json:"hourlyCost"`
	} `json:"employees"`
	Financials     json.RawMessage `json:"financials"`
	ClientsSummary json.RawMessage `json:"clientsSummary"`
	RecentLogs     json.RawMessage `json:"recentLogs"`
}

// buildContext trims a caller-supplied context, or derives one from the
// current snapshot when the caller sent none.
func (s *AdvisorServiceImpl) buildContext(ctx context.Context, raw json.RawMessage) (string, error) {
	var out advisorContext

	if trimmed := strings.TrimSpace(string(raw)); trimmed != "" && trimmed != "null" {
		var in callerContext
		if err := json.Unmarshal(raw, &in); err != nil {
			return "", fmt.Errorf("invalid chat context: %w", err)
		}
		out.Employees = make([]advisorEmployee, 0, len(in.Employees))
		for _, e := range in.Employees {
			out.Employees = append(out.Employees, advisorEmployee{Name: e.Name, Role: e.Role, Cost: e.HourlyCost})
		}
		out.Financials = in.Financials
		out.Clients = in.ClientsSummary
		out.Logs = in.RecentLogs
	} else {
		if s.snapshots == nil {
			return "", fmt.Errorf("no firm data available")
		}
		snap, _, err := s.snapshots.Snapshot(ctx)
		if err != nil {
			return "", err
		}
		if out, err = snapshotContext(*snap, s.now()); err != nil {
			return "", err
		}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode chat context: %w", err)
	}
	return string(b), nil
}

func snapshotContext(snap models.Snapshot, now time.Time) (advisorContext, error) {
	out := advisorContext{Employees: make([]advisorEmployee, 0, len(snap.Employees))}
	for _, e := range snap.Employees {
		out.Employees = append(out.Employees, advisorEmployee{Name: e.Name, Role: e.Role, Cost: metrics.EffectiveHourlyCost(e)})
	}

	clients := make([]advisorClient, 0, len(snap.Clients))
	for _, c := range snap.Clients {
		clients = append(clients, advisorClient{Status: c.Status, LastCommunication: c.LastCommunication, RetainerFee: c.RetainerFee})
	}

	// Task logs arrive newest first.
	logs := snap.TaskLogs
	if len(logs) > ChatRecentLogs {
		logs = logs[:ChatRecentLogs]
	}

	var err error
	if out.Financials, err = json.Marshal(snap.Financials); err != nil {
		return out, fmt.Errorf("failed to encode financials: %w", err)
	}
	if out.Clients, err = json.Marshal(clients); err != nil {
		return out, fmt.Errorf("failed to encode clients: %w", err)
	}
	if out.Logs, err = json.Marshal(logs); err != nil {
		return out, fmt.Errorf("failed to encode logs: %w", err)
	}

	burn := burnReport(snap, now)
	out.Burn = &burn
	return out, nil
}

// Ensure AdvisorServiceImpl implements the interface
var _ primary.AdvisorService = (*AdvisorServiceImpl)(nil)
