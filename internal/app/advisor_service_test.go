package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

func chatHistory(n int) []secondary.ChatMessage {
	msgs := make([]secondary.ChatMessage, n)
	for i := range msgs {
		role := secondary.ChatRoleUser
		if i%2 == 1 {
			role = secondary.ChatRoleAssistant
		}
		msgs[i] = secondary.ChatMessage{Role: role, Content: fmt.Sprintf("m%d", i)}
	}
	return msgs
}

func TestAdvisorService_NotConfigured(t *testing.T) {
	service := NewAdvisorService(nil, nil, nil)

	assert.False(t, service.Configured())
	resp := service.Chat(context.Background(), primary.ChatRequest{Messages: chatHistory(1)})
	assert.Equal(t, NotConfiguredReply, resp.Content)
}

func TestAdvisorService_SendsLastFiveMessages(t *testing.T) {
	completer := &mockChatCompleter{reply: "Cut the printer lease."}
	service := NewAdvisorService(completer, &mockSnapshotService{snapshot: metricsSnapshot()}, nil)
	service.now = fixedClock

	resp := service.Chat(context.Background(), primary.ChatRequest{Messages: chatHistory(8)})

	assert.Equal(t, "Cut the printer lease.", resp.Content)
	require.Len(t, completer.messages, ChatHistoryLimit)
	assert.Equal(t, "m3", completer.messages[0].Content)
	assert.Equal(t, "m7", completer.messages[4].Content)
}

func TestAdvisorService_ContextFromSnapshot(t *testing.T) {
	snap := metricsSnapshot()
	for i := 0; i < 15; i++ {
		snap.TaskLogs = append(snap.TaskLogs, models.TaskLog{ID: fmt.Sprintf("x%d", i), EmployeeID: "e1", Date: "2026-09-01", Hours: 1})
	}
	completer := &mockChatCompleter{reply: "ok"}
	service := NewAdvisorService(completer, &mockSnapshotService{snapshot: snap}, nil)
	service.now = fixedClock

	service.Chat(context.Background(), primary.ChatRequest{Messages: chatHistory(1)})

	assert.Contains(t, completer.system, "Chief of Staff")
	assert.Contains(t, completer.system, `"name": "Ana"`)
	assert.Contains(t, completer.system, `"total_daily_burn": 160`)
	assert.Equal(t, ChatRecentLogs, strings.Count(completer.system, `"employeeId"`))
}

func TestAdvisorService_TrimsCallerContext(t *testing.T) {
	completer := &mockChatCompleter{reply: "ok"}
	snapshots := &mockSnapshotService{snapshot: metricsSnapshot()}
	service := NewAdvisorService(completer, snapshots, nil)

	callerCtx := json.RawMessage(`{
		"employees": [{"id": "e9", "name": "Luis", "role": "Attorney", "hourlyCost": 55, "ssn": "secret"}],
		"financials": {"cashOnHand": 900},
		"clientsSummary": [{"status": "active", "retainerFee": 300}],
		"recentLogs": []
	}`)
	service.Chat(context.Background(), primary.ChatRequest{Messages: chatHistory(1), Context: callerCtx})

	assert.Contains(t, completer.system, `"cost": 55`)
	assert.Contains(t, completer.system, `"cashOnHand": 900`)
	assert.NotContains(t, completer.system, "secret")
	assert.NotContains(t, completer.system, "e9")
	assert.Equal(t, 0, snapshots.calls, "caller context must not load a snapshot")
}

func TestAdvisorService_ErrorsBecomeReplies(t *testing.T) {
	completer := &mockChatCompleter{err: errors.New("quota exceeded")}
	service := NewAdvisorService(completer, &mockSnapshotService{snapshot: metricsSnapshot()}, nil)

	resp := service.Chat(context.Background(), primary.ChatRequest{Messages: chatHistory(2)})
	assert.Equal(t, "Error: quota exceeded. Please check your connection or AI configuration.", resp.Content)

	bad := service.Chat(context.Background(), primary.ChatRequest{Messages: chatHistory(1), Context: json.RawMessage(`[1,2]`)})
	assert.True(t, strings.HasPrefix(bad.Content, "Error: invalid chat context"), bad.Content)
}
