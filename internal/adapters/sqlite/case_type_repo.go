package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// CaseTypeRepository implements secondary.CaseTypeRepository with SQLite.
type CaseTypeRepository struct {
	db *sql.DB
}

// NewCaseTypeRepository creates a new SQLite case type repository.
func NewCaseTypeRepository(db *sql.DB) *CaseTypeRepository {
	return &CaseTypeRepository{db: db}
}

// Create persists a new case type.
func (r *CaseTypeRepository) Create(ctx context.Context, ct *models.CaseType) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO case_types (id, name, estimated_hours) VALUES (?, ?, ?)",
		ct.ID, ct.Name, ct.EstimatedHours,
	)
	if err != nil {
		return fmt.Errorf("failed to create case type: %w", err)
	}
	return nil
}

// GetByID retrieves a case type by its ID.
func (r *CaseTypeRepository) GetByID(ctx context.Context, id string) (*models.CaseType, error) {
	ct := &models.CaseType{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, estimated_hours FROM case_types WHERE id = ?", id,
	).Scan(&ct.ID, &ct.Name, &ct.EstimatedHours)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("case type %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get case type: %w", err)
	}
	return ct, nil
}

// Update overwrites an existing case type.
func (r *CaseTypeRepository) Update(ctx context.Context, ct *models.CaseType) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE case_types SET name = ?, estimated_hours = ? WHERE id = ?",
		ct.Name, ct.EstimatedHours, ct.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update case type: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("case type %s: %w", ct.ID, models.ErrNotFound))
}

// Delete removes a case type.
func (r *CaseTypeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM case_types WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete case type: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("case type %s: %w", id, models.ErrNotFound))
}

// List retrieves all stored case types ordered by name.
func (r *CaseTypeRepository) List(ctx context.Context) ([]*models.CaseType, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, estimated_hours FROM case_types ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list case types: %w", err)
	}
	defer rows.Close()

	var types []*models.CaseType
	for rows.Next() {
		ct := &models.CaseType{}
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.EstimatedHours); err != nil {
			return nil, fmt.Errorf("failed to scan case type: %w", err)
		}
		types = append(types, ct)
	}
	return types, rows.Err()
}

// Ensure CaseTypeRepository implements the interface
var _ secondary.CaseTypeRepository = (*CaseTypeRepository)(nil)
