// Package ticket contains the pure business logic for support tickets.
// This is part of the Functional Core - no I/O, only pure functions.
package ticket

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/firmos/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanCreateTicket evaluates whether a ticket may be submitted.
// Rules:
//   - subject, description and submitter are required
//   - priority must be known
func CanCreateTicket(t models.SupportTicket) GuardResult {
	if strings.TrimSpace(t.Subject) == "" {
		return GuardResult{Allowed: false, Reason: "subject is required"}
	}
	if strings.TrimSpace(t.Description) == "" {
		return GuardResult{Allowed: false, Reason: "description is required"}
	}
	if strings.TrimSpace(t.SubmittedBy) == "" {
		return GuardResult{Allowed: false, Reason: "submitter name is required"}
	}
	if !slices.Contains(models.TicketPriorities, t.Priority) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid priority %q (expected one of %s)", t.Priority, strings.Join(models.TicketPriorities, ", ")),
		}
	}
	return GuardResult{Allowed: true}
}

// ResolveContext provides context for ticket resolution guards.
type ResolveContext struct {
	TicketNumber string
	Status       string
	Resolution   string
}

// CanResolveTicket evaluates whether a ticket can be resolved.
// Rules: resolution text is required and closed tickets stay closed.
func CanResolveTicket(ctx ResolveContext) GuardResult {
	if strings.TrimSpace(ctx.Resolution) == "" {
		return GuardResult{Allowed: false, Reason: "resolution is required to resolve a ticket"}
	}
	if ctx.Status == models.TicketStatusClosed {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot resolve ticket %s: ticket is closed", ctx.TicketNumber),
		}
	}
	return GuardResult{Allowed: true}
}

var validStatuses = []string{
	models.TicketStatusOpen,
	models.TicketStatusInProgress,
	models.TicketStatusResolved,
	models.TicketStatusClosed,
}

// CanUpdateStatus evaluates whether a status value is known.
func CanUpdateStatus(status string) GuardResult {
	if !slices.Contains(validStatuses, status) {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid ticket status %q", status)}
	}
	return GuardResult{Allowed: true}
}
