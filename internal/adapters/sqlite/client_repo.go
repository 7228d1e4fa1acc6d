package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// ClientRepository implements secondary.ClientRepository with SQLite.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new SQLite client repository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, sponsor_name, case_type, status, retainer_fee, monthly_fee, last_communication,
	next_payment_due, notes, billing_type, flat_fee_amount, estimated_hours, hours_logged`

// Create persists a new client.
func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO clients ("+clientColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.Name, c.SponsorName, c.CaseType, c.Status, c.RetainerFee, c.MonthlyFee, nullTime(c.LastCommunication),
		nullString(c.NextPaymentDue), nullString(c.Notes), c.BillingType, c.FlatFeeAmount, c.EstimatedHours, c.HoursLogged,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

// GetByID retrieves a client by its ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+clientColumns+" FROM clients WHERE id = ?", id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return c, nil
}

// Update overwrites an existing client. hours_logged is left alone; it only
// moves through AddHoursLogged.
func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET name = ?, sponsor_name = ?, case_type = ?, status = ?, retainer_fee = ?, monthly_fee = ?,
			last_communication = ?, next_payment_due = ?, notes = ?, billing_type = ?, flat_fee_amount = ?,
			estimated_hours = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		c.Name, c.SponsorName, c.CaseType, c.Status, c.RetainerFee, c.MonthlyFee,
		nullTime(c.LastCommunication), nullString(c.NextPaymentDue), nullString(c.Notes), c.BillingType, c.FlatFeeAmount,
		c.EstimatedHours, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("client %s: %w", c.ID, models.ErrNotFound))
}

// List retrieves clients matching the given filters.
func (r *ClientRepository) List(ctx context.Context, filters secondary.ClientFilters) ([]*models.Client, error) {
	query := "SELECT " + clientColumns + " FROM clients WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}
	if filters.BillingType != "" {
		query += " AND billing_type = ?"
		args = append(args, filters.BillingType)
	}

	query += " ORDER BY created_at DESC, name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// AddHoursLogged increments a client's hours logged in a single statement.
func (r *ClientRepository) AddHoursLogged(ctx context.Context, id string, hours float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE clients SET hours_logged = hours_logged + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		hours, id,
	)
	if err != nil {
		return fmt.Errorf("failed to add hours to client: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("client %s: %w", id, models.ErrNotFound))
}

func scanClient(s scanner) (*models.Client, error) {
	var (
		lastComm sql.NullTime
		due      sql.NullString
		notes    sql.NullString
	)
	c := &models.Client{}
	err := s.Scan(&c.ID, &c.Name, &c.SponsorName, &c.CaseType, &c.Status, &c.RetainerFee, &c.MonthlyFee, &lastComm,
		&due, &notes, &c.BillingType, &c.FlatFeeAmount, &c.EstimatedHours, &c.HoursLogged)
	if err != nil {
		return nil, err
	}
	c.LastCommunication = lastComm.Time
	c.NextPaymentDue = due.String
	c.Notes = notes.String
	return c, nil
}

// Ensure ClientRepository implements the interface
var _ secondary.ClientRepository = (*ClientRepository)(nil)
