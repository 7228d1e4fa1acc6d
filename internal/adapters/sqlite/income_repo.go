package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// IncomeRepository implements secondary.IncomeRepository with SQLite.
type IncomeRepository struct {
	db *sql.DB
}

// NewIncomeRepository creates a new SQLite income repository.
func NewIncomeRepository(db *sql.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// Create persists a new income entry.
func (r *IncomeRepository) Create(ctx context.Context, e *models.IncomeEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO income_entries (id, date, amount, client_name, description, category, method, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date, e.Amount, nullString(e.ClientName), nullString(e.Description), e.Category, e.Method, nullString(e.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to create income entry: %w", err)
	}
	return nil
}

// List retrieves income entries, newest first. Limit 0 means all.
func (r *IncomeRepository) List(ctx context.Context, limit int) ([]*models.IncomeEntry, error) {
	query := "SELECT id, date, amount, client_name, description, category, method, notes FROM income_entries ORDER BY date DESC, created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.IncomeEntry
	for rows.Next() {
		var clientName, description, notes sql.NullString
		e := &models.IncomeEntry{}
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &clientName, &description, &e.Category, &e.Method, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan income entry: %w", err)
		}
		e.ClientName = clientName.String
		e.Description = description.String
		e.Notes = notes.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Ensure IncomeRepository implements the interface
var _ secondary.IncomeRepository = (*IncomeRepository)(nil)
