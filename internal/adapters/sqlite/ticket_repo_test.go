package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/firmos/internal/adapters/sqlite"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

func TestTicketRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTicketRepository(db)
	ctx := context.Background()
	created := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	ticket := &models.SupportTicket{
		ID: "t1", TicketNumber: "00001", Subject: "Scanner", Priority: "high",
		Status: models.TicketStatusOpen, CreatedAt: created, SubmittedBy: "Ana",
	}
	if err := repo.Create(ctx, ticket); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	resolved := created.Add(2 * time.Hour)
	ticket.Status = models.TicketStatusResolved
	ticket.Resolution = "Replaced cable"
	ticket.ResolvedAt = &resolved
	if err := repo.Update(ctx, ticket); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.TicketStatusResolved || got.ResolvedAt == nil || !got.ResolvedAt.Equal(resolved) {
		t.Errorf("GetByID() = %+v", got)
	}

	if _, err := repo.GetByID(ctx, "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetByID(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestTicketRepository_ListAndNumbers(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTicketRepository(db)
	ctx := context.Background()
	now := time.Now()

	for i, n := range []string{"00001", "00003"} {
		status := models.TicketStatusOpen
		if i == 1 {
			status = models.TicketStatusClosed
		}
		err := repo.Create(ctx, &models.SupportTicket{
			ID: n, TicketNumber: n, Subject: "s", Priority: "low", Status: status, CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	numbers, err := repo.TicketNumbers(ctx)
	if err != nil {
		t.Fatalf("TicketNumbers failed: %v", err)
	}
	if len(numbers) != 2 {
		t.Errorf("TicketNumbers() = %v", numbers)
	}

	open, _ := repo.List(ctx, secondary.TicketFilters{Status: models.TicketStatusOpen})
	if len(open) != 1 || open[0].TicketNumber != "00001" {
		t.Errorf("List(open) = %v", open)
	}
}

func TestTicketRepository_DuplicateNumbersAreStored(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTicketRepository(db)
	ctx := context.Background()

	// Optimistic numbering can hand two tickets the same number.
	for _, id := range []string{"a", "b"} {
		err := repo.Create(ctx, &models.SupportTicket{
			ID: id, TicketNumber: "00002", Subject: "s", Priority: "low", Status: models.TicketStatusOpen, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
	}
}
