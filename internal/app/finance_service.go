package app

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/example/firmos/internal/core/expense"
	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// Balance field names accepted by UpdateFinancials besides the monthly
// expense fields.
const (
	FieldCashOnHand     = "cashOnHand"
	FieldDebt           = "debt"
	FieldCashboxBalance = "cashboxBalance"
)

// FinanceServiceImpl implements the FinanceService interface.
type FinanceServiceImpl struct {
	financialsRepo secondary.FinancialsRepository
	employeeRepo   secondary.EmployeeRepository
	changes        ChangeRecorder
}

// NewFinanceService creates a new FinanceService with injected dependencies.
func NewFinanceService(financialsRepo secondary.FinancialsRepository, employeeRepo secondary.EmployeeRepository, changes ChangeRecorder) *FinanceServiceImpl {
	return &FinanceServiceImpl{
		financialsRepo: financialsRepo,
		employeeRepo:   employeeRepo,
		changes:        changes,
	}
}

// GetFinancials returns the record with fixedOverheadHourly derived from
// current staff.
func (s *FinanceServiceImpl) GetFinancials(ctx context.Context) (*models.Financials, error) {
	financials, err := s.financialsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financials: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	financials.FixedOverheadHourly = metrics.HourlyOverhead(metrics.MonthlyTotal(*financials), derefAll(employees))
	return financials, nil
}

// UpdateFinancials applies a partial update to named fields. Unknown field
// names reject the whole update.
func (s *FinanceServiceImpl) UpdateFinancials(ctx context.Context, req primary.UpdateFinancialsRequest) (*models.Financials, error) {
	if len(req.Fields) == 0 {
		return nil, &ValidationError{Reason: "no financials fields to update"}
	}

	financials, err := s.financialsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financials: %w", err)
	}

	// Sorted so the activity log order is stable.
	names := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		amount := req.Fields[name]
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return nil, &ValidationError{Reason: fmt.Sprintf("%s must be a finite number", name)}
		}
		switch name {
		case FieldCashOnHand:
			financials.CashOnHand = amount
		case FieldDebt:
			financials.Debt = amount
		case FieldCashboxBalance:
			financials.CashboxBalance = amount
		default:
			if amount < 0 {
				return nil, &ValidationError{Reason: fmt.Sprintf("%s cannot be negative", name)}
			}
			if !financials.Set(models.ExpenseField(name), amount) {
				return nil, &ValidationError{Reason: fmt.Sprintf("unknown financials field %q", name)}
			}
		}
	}

	if err := s.financialsRepo.Update(ctx, financials); err != nil {
		return nil, fmt.Errorf("failed to update financials: %w", err)
	}

	for _, name := range names {
		s.changes.updated(ctx, CollectionFinancials, "financials", "financials", name, "", formatAmount(req.Fields[name]))
	}
	return s.GetFinancials(ctx)
}

// AddExpense routes a free-text expense to a named field or appends it as
// a custom expense.
func (s *FinanceServiceImpl) AddExpense(ctx context.Context, req primary.AddExpenseRequest) (*primary.AddExpenseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, &ValidationError{Reason: "expense name is required"}
	}
	if req.Amount < 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, &ValidationError{Reason: fmt.Sprintf("expense amount must be a non-negative number (got %v)", req.Amount)}
	}

	resp := &primary.AddExpenseResponse{}
	if field, ok := expense.Route(name); ok {
		if err := s.financialsRepo.SetExpenseField(ctx, field, req.Amount); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", field, err)
		}
		resp.RoutedTo = field
		s.changes.updated(ctx, CollectionFinancials, "financials", "financials", string(field), "", formatAmount(req.Amount))
	} else {
		custom := &models.CustomExpense{ID: uuid.NewString(), Name: name, Amount: req.Amount}
		if err := s.financialsRepo.AddCustomExpense(ctx, custom); err != nil {
			return nil, fmt.Errorf("failed to add custom expense: %w", err)
		}
		resp.Custom = custom
		s.changes.created(ctx, CollectionFinancials, "custom_expense", custom.ID)
	}

	financials, err := s.GetFinancials(ctx)
	if err != nil {
		return nil, err
	}
	resp.Financials = financials
	return resp, nil
}

// DeleteCustomExpense removes a custom expense row.
func (s *FinanceServiceImpl) DeleteCustomExpense(ctx context.Context, id string) error {
	if err := s.financialsRepo.DeleteCustomExpense(ctx, id); err != nil {
		return err
	}
	s.changes.deleted(ctx, CollectionFinancials, "custom_expense", id)
	return nil
}

// Ensure FinanceServiceImpl implements the interface
var _ primary.FinanceService = (*FinanceServiceImpl)(nil)
