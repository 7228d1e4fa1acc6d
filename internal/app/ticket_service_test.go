package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/firmos/internal/ctxutil"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
)

func newTestTicketService() (*TicketServiceImpl, *mockTicketRepository, *mockLogWriter) {
	repo := newMockTicketRepository()
	logs := &mockLogWriter{}
	service := NewTicketService(repo, NewChangeRecorder(logs, nil, nil))
	service.now = fixedClock
	return service, repo, logs
}

func TestTicketService_CreateNumbersSequentially(t *testing.T) {
	service, _, logs := newTestTicketService()
	ctx := ctxutil.WithActorID(context.Background(), "Dana")

	first, err := service.CreateTicket(ctx, primary.CreateTicketRequest{Subject: "Printer jammed", Description: "Tray 2 grinds"})
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}
	second, err := service.CreateTicket(ctx, primary.CreateTicketRequest{Subject: "Clio login", Description: "Locked out", Priority: "urgent", SubmittedBy: "Ana"})
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if first.TicketNumber != "00001" || second.TicketNumber != "00002" {
		t.Errorf("numbers = %q, %q; want 00001, 00002", first.TicketNumber, second.TicketNumber)
	}
	if first.Priority != DefaultTicketPriority || first.Status != models.TicketStatusOpen {
		t.Errorf("first = priority %q status %q", first.Priority, first.Status)
	}
	if first.SubmittedBy != "Dana" || second.SubmittedBy != "Ana" {
		t.Errorf("submittedBy = %q, %q", first.SubmittedBy, second.SubmittedBy)
	}
	if len(logs.entries) != 2 {
		t.Errorf("log entries = %v, want 2 creates", logs.entries)
	}
}

func TestTicketService_CreateRejectsInvalid(t *testing.T) {
	service, repo, _ := newTestTicketService()

	for _, req := range []primary.CreateTicketRequest{
		{Subject: "  ", Description: "d", SubmittedBy: "Ana"},
		{Subject: "x", SubmittedBy: "Ana"},
		{Subject: "x", Description: "d"},
		{Subject: "x", Description: "d", SubmittedBy: "Ana", Priority: "asap"},
	} {
		if _, err := service.CreateTicket(context.Background(), req); !IsValidation(err) {
			t.Errorf("CreateTicket(%+v) error = %v, want ValidationError", req, err)
		}
	}
	if len(repo.tickets) != 0 {
		t.Error("invalid ticket was stored")
	}
}

func TestTicketService_Resolve(t *testing.T) {
	service, repo, _ := newTestTicketService()
	ctx := context.Background()

	ticket, _ := service.CreateTicket(ctx, primary.CreateTicketRequest{Subject: "Scanner", Description: "d", SubmittedBy: "Ana"})

	if _, err := service.ResolveTicket(ctx, ticket.ID, ""); !IsValidation(err) {
		t.Errorf("empty resolution error = %v, want ValidationError", err)
	}

	resolved, err := service.ResolveTicket(ctx, ticket.ID, "Replaced cable")
	if err != nil {
		t.Fatalf("ResolveTicket failed: %v", err)
	}
	if resolved.Status != models.TicketStatusResolved || resolved.ResolvedAt == nil || !resolved.ResolvedAt.Equal(testNow) {
		t.Errorf("resolved = %+v", resolved)
	}
	if repo.tickets[ticket.ID].Resolution != "Replaced cable" {
		t.Error("resolution not persisted")
	}

	if _, err := service.ResolveTicket(ctx, "missing", "x"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("missing ticket error = %v, want ErrNotFound", err)
	}
}

func TestTicketService_ResolveClosedRejected(t *testing.T) {
	service, _, _ := newTestTicketService()
	ctx := context.Background()

	ticket, _ := service.CreateTicket(ctx, primary.CreateTicketRequest{Subject: "Old", Description: "d", SubmittedBy: "Ana"})
	closed := models.TicketStatusClosed
	if _, err := service.UpdateTicket(ctx, ticket.ID, primary.UpdateTicketRequest{Status: &closed}); err != nil {
		t.Fatalf("UpdateTicket failed: %v", err)
	}

	if _, err := service.ResolveTicket(ctx, ticket.ID, "late"); !IsValidation(err) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestTicketService_ReopenClearsResolvedAt(t *testing.T) {
	service, _, _ := newTestTicketService()
	ctx := context.Background()

	ticket, _ := service.CreateTicket(ctx, primary.CreateTicketRequest{Subject: "Phones", Description: "d", SubmittedBy: "Ana"})
	if _, err := service.ResolveTicket(ctx, ticket.ID, "Rebooted"); err != nil {
		t.Fatalf("ResolveTicket failed: %v", err)
	}

	inProgress := models.TicketStatusInProgress
	high := "high"
	updated, err := service.UpdateTicket(ctx, ticket.ID, primary.UpdateTicketRequest{Status: &inProgress, Priority: &high})
	if err != nil {
		t.Fatalf("UpdateTicket failed: %v", err)
	}
	if updated.ResolvedAt != nil || updated.Priority != "high" {
		t.Errorf("updated = %+v", updated)
	}

	bogus := "snoozed"
	if _, err := service.UpdateTicket(ctx, ticket.ID, primary.UpdateTicketRequest{Status: &bogus}); !IsValidation(err) {
		t.Errorf("bogus status error = %v, want ValidationError", err)
	}
}
