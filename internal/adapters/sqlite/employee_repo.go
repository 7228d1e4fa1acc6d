package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// EmployeeRepository implements secondary.EmployeeRepository with SQLite.
type EmployeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new SQLite employee repository.
func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = "id, name, role, hourly_cost, salary, daily_hours, daily_target"

// Create persists a new employee.
func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO employees ("+employeeColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Name, e.Role, e.HourlyCost, e.Salary, e.DailyHours, e.DailyTarget,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by its ID.
func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = ?", id)
	e, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// Update overwrites an existing employee.
func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET name = ?, role = ?, hourly_cost = ?, salary = ?, daily_hours = ?, daily_target = ?,
			updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		e.Name, e.Role, e.HourlyCost, e.Salary, e.DailyHours, e.DailyTarget, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("employee %s: %w", e.ID, models.ErrNotFound))
}

// List retrieves all employees ordered by name.
func (r *EmployeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*models.Employee, error) {
	e := &models.Employee{}
	err := s.Scan(&e.ID, &e.Name, &e.Role, &e.HourlyCost, &e.Salary, &e.DailyHours, &e.DailyTarget)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Ensure EmployeeRepository implements the interface
var _ secondary.EmployeeRepository = (*EmployeeRepository)(nil)
