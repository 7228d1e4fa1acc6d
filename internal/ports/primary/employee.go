package primary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// EmployeeService defines the primary port for staff operations.
type EmployeeService interface {
	// CreateEmployee validates and stores a new employee with intake defaults.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error)

	// UpdateEmployee applies a partial update to an employee.
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (*models.Employee, error)

	// GetEmployee retrieves an employee by ID.
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)

	// ListEmployees retrieves all employees.
	ListEmployees(ctx context.Context) ([]*models.Employee, error)
}

// CreateEmployeeRequest contains parameters for creating an employee.
type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	HourlyCost  float64 `json:"hourlyCost"`
	Salary      float64 `json:"salary"`
	DailyHours  float64 `json:"dailyHours"`
	DailyTarget float64 `json:"dailyTarget"`
}

// UpdateEmployeeRequest contains the fields to change. Nil fields are kept.
type UpdateEmployeeRequest struct {
	Name        *string  `json:"name"`
	Role        *string  `json:"role"`
	HourlyCost  *float64 `json:"hourlyCost"`
	Salary      *float64 `json:"salary"`
	DailyHours  *float64 `json:"dailyHours"`
	DailyTarget *float64 `json:"dailyTarget"`
}
