package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	coreticket "github.com/example/firmos/internal/core/ticket"
	"github.com/example/firmos/internal/ctxutil"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// DefaultTicketPriority is used when a ticket is submitted without one.
const DefaultTicketPriority = "medium"

// TicketServiceImpl implements the TicketService interface.
type TicketServiceImpl struct {
	ticketRepo secondary.TicketRepository
	changes    ChangeRecorder
	now        func() time.Time
}

// NewTicketService creates a new TicketService with injected dependencies.
func NewTicketService(ticketRepo secondary.TicketRepository, changes ChangeRecorder) *TicketServiceImpl {
	return &TicketServiceImpl{
		ticketRepo: ticketRepo,
		changes:    changes,
		now:        time.Now,
	}
}

// CreateTicket numbers and stores a new open ticket.
//
// Numbering reads the existing numbers and takes max+1 without a lock, so
// two concurrent submissions can receive the same number.
func (s *TicketServiceImpl) CreateTicket(ctx context.Context, req primary.CreateTicketRequest) (*models.SupportTicket, error) {
	ticket := &models.SupportTicket{
		ID:          uuid.NewString(),
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      models.TicketStatusOpen,
		CreatedAt:   s.now(),
		SubmittedBy: req.SubmittedBy,
	}
	if ticket.Priority == "" {
		ticket.Priority = DefaultTicketPriority
	}
	if ticket.SubmittedBy == "" {
		ticket.SubmittedBy = ctxutil.ActorFromContext(ctx)
	}

	if result := coreticket.CanCreateTicket(*ticket); !result.Allowed {
		return nil, invalid(result.Error())
	}

	numbers, err := s.ticketRepo.TicketNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ticket numbers: %w", err)
	}
	ticket.TicketNumber = coreticket.NextTicketNumber(numbers)

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	s.changes.created(ctx, CollectionTickets, "ticket", ticket.ID)
	return ticket, nil
}

// ResolveTicket marks a ticket resolved with a resolution note.
func (s *TicketServiceImpl) ResolveTicket(ctx context.Context, id, resolution string) (*models.SupportTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	guardCtx := coreticket.ResolveContext{
		TicketNumber: ticket.TicketNumber,
		Status:       ticket.Status,
		Resolution:   resolution,
	}
	if result := coreticket.CanResolveTicket(guardCtx); !result.Allowed {
		return nil, invalid(result.Error())
	}

	oldStatus := ticket.Status
	resolvedAt := s.now()
	ticket.Status = models.TicketStatusResolved
	ticket.Resolution = resolution
	ticket.ResolvedAt = &resolvedAt

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to resolve ticket: %w", err)
	}

	s.changes.updated(ctx, CollectionTickets, "ticket", id, "status", oldStatus, ticket.Status)
	return ticket, nil
}

// UpdateTicket changes a ticket's status or priority.
func (s *TicketServiceImpl) UpdateTicket(ctx context.Context, id string, req primary.UpdateTicketRequest) (*models.SupportTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := ticket.Status

	if req.Status != nil {
		if result := coreticket.CanUpdateStatus(*req.Status); !result.Allowed {
			return nil, invalid(result.Error())
		}
		ticket.Status = *req.Status
		if ticket.IsOpen() {
			ticket.ResolvedAt = nil
		}
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}

	if result := coreticket.CanCreateTicket(*ticket); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	s.changes.updated(ctx, CollectionTickets, "ticket", id, "status", oldStatus, ticket.Status)
	return ticket, nil
}

// ListTickets retrieves tickets, newest first.
func (s *TicketServiceImpl) ListTickets(ctx context.Context, status string) ([]*models.SupportTicket, error) {
	tickets, err := s.ticketRepo.List(ctx, secondary.TicketFilters{Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// Ensure TicketServiceImpl implements the interface
var _ primary.TicketService = (*TicketServiceImpl)(nil)
