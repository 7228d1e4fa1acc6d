package primary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// TicketService defines the primary port for support ticket operations.
type TicketService interface {
	// CreateTicket numbers and stores a new open ticket.
	CreateTicket(ctx context.Context, req CreateTicketRequest) (*models.SupportTicket, error)

	// ResolveTicket marks a ticket resolved with a resolution note.
	ResolveTicket(ctx context.Context, id, resolution string) (*models.SupportTicket, error)

	// UpdateTicket changes a ticket's status or priority.
	UpdateTicket(ctx context.Context, id string, req UpdateTicketRequest) (*models.SupportTicket, error)

	// ListTickets retrieves tickets, newest first.
	ListTickets(ctx context.Context, status string) ([]*models.SupportTicket, error)
}

// CreateTicketRequest contains parameters for submitting a ticket.
// An empty SubmittedBy falls back to the actor.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	SubmittedBy string `json:"submittedBy"`
}

// UpdateTicketRequest contains the fields to change. Nil fields are kept.
type UpdateTicketRequest struct {
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}
