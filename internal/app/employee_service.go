package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	coreemployee "github.com/example/firmos/internal/core/employee"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// EmployeeServiceImpl implements the EmployeeService interface.
type EmployeeServiceImpl struct {
	employeeRepo secondary.EmployeeRepository
	changes      ChangeRecorder
}

// NewEmployeeService creates a new EmployeeService with injected dependencies.
func NewEmployeeService(employeeRepo secondary.EmployeeRepository, changes ChangeRecorder) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		changes:      changes,
	}
}

// CreateEmployee validates and stores a new employee with intake defaults.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req primary.CreateEmployeeRequest) (*models.Employee, error) {
	employee := coreemployee.ApplyIntakeDefaults(models.Employee{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Role:        req.Role,
		HourlyCost:  req.HourlyCost,
		Salary:      req.Salary,
		DailyHours:  req.DailyHours,
		DailyTarget: req.DailyTarget,
	})

	if result := coreemployee.CanSaveEmployee(employee); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.employeeRepo.Create(ctx, &employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.changes.created(ctx, CollectionEmployees, "employee", employee.ID)
	return &employee, nil
}

// UpdateEmployee applies a partial update to an employee.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req primary.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldCost := employee.HourlyCost

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		employee.Role = *req.Role
	}
	if req.HourlyCost != nil {
		employee.HourlyCost = *req.HourlyCost
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if req.DailyHours != nil {
		employee.DailyHours = *req.DailyHours
	}
	if req.DailyTarget != nil {
		employee.DailyTarget = *req.DailyTarget
	}

	if result := coreemployee.CanSaveEmployee(*employee); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	s.changes.updated(ctx, CollectionEmployees, "employee", id,
		"hourly_cost", formatAmount(oldCost), formatAmount(employee.HourlyCost))
	return employee, nil
}

// GetEmployee retrieves an employee by ID.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// ListEmployees retrieves all employees.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Ensure EmployeeServiceImpl implements the interface
var _ primary.EmployeeService = (*EmployeeServiceImpl)(nil)
