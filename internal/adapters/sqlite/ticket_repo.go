package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// TicketRepository implements secondary.TicketRepository with SQLite.
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new SQLite ticket repository.
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = "id, ticket_number, subject, description, priority, status, created_at, submitted_by, resolved_at, resolution"

// Create persists a new ticket.
func (r *TicketRepository) Create(ctx context.Context, t *models.SupportTicket) error {
	var resolvedAt sql.NullTime
	if t.ResolvedAt != nil {
		resolvedAt = sql.NullTime{Time: *t.ResolvedAt, Valid: true}
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tickets ("+ticketColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.TicketNumber, t.Subject, nullString(t.Description), t.Priority, t.Status, t.CreatedAt,
		nullString(t.SubmittedBy), resolvedAt, nullString(t.Resolution),
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// GetByID retrieves a ticket by its ID.
func (r *TicketRepository) GetByID(ctx context.Context, id string) (*models.SupportTicket, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+ticketColumns+" FROM tickets WHERE id = ?", id)
	t, err := scanTicket(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ticket %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return t, nil
}

// Update overwrites a ticket's mutable fields.
func (r *TicketRepository) Update(ctx context.Context, t *models.SupportTicket) error {
	var resolvedAt sql.NullTime
	if t.ResolvedAt != nil {
		resolvedAt = sql.NullTime{Time: *t.ResolvedAt, Valid: true}
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE tickets SET subject = ?, description = ?, priority = ?, status = ?, resolved_at = ?, resolution = ? WHERE id = ?",
		t.Subject, nullString(t.Description), t.Priority, t.Status, resolvedAt, nullString(t.Resolution), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("ticket %s: %w", t.ID, models.ErrNotFound))
}

// List retrieves tickets matching the given filters, newest first.
func (r *TicketRepository) List(ctx context.Context, filters secondary.TicketFilters) ([]*models.SupportTicket, error) {
	query := "SELECT " + ticketColumns + " FROM tickets WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}
	if filters.Priority != "" {
		query += " AND priority = ?"
		args = append(args, filters.Priority)
	}

	query += " ORDER BY created_at DESC, ticket_number DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.SupportTicket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// TicketNumbers returns every stored ticket number.
func (r *TicketRepository) TicketNumbers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT ticket_number FROM tickets")
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket numbers: %w", err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan ticket number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func scanTicket(s scanner) (*models.SupportTicket, error) {
	var (
		description sql.NullString
		submittedBy sql.NullString
		resolvedAt  sql.NullTime
		resolution  sql.NullString
	)
	t := &models.SupportTicket{}
	err := s.Scan(&t.ID, &t.TicketNumber, &t.Subject, &description, &t.Priority, &t.Status, &t.CreatedAt,
		&submittedBy, &resolvedAt, &resolution)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	t.SubmittedBy = submittedBy.String
	t.Resolution = resolution.String
	if resolvedAt.Valid {
		at := resolvedAt.Time
		t.ResolvedAt = &at
	}
	return t, nil
}

// Ensure TicketRepository implements the interface
var _ secondary.TicketRepository = (*TicketRepository)(nil)
