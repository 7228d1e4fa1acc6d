package models

import "time"

// Ticket status constants
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// TicketPriorities are the accepted ticket priorities.
var TicketPriorities = []string{"low", "medium", "high", "urgent"}

// SupportTicket is an internal support request.
type SupportTicket struct {
	ID           string     `json:"id"`
	TicketNumber string     `json:"ticketNumber"` // 5-digit, zero-padded
	Subject      string     `json:"subject"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	SubmittedBy  string     `json:"submittedBy"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
	Resolution   string     `json:"resolution,omitempty"`
}

// IsOpen reports whether the ticket still needs attention.
func (t SupportTicket) IsOpen() bool {
	return t.Status == TicketStatusOpen || t.Status == TicketStatusInProgress
}
