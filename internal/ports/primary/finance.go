package primary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// FinanceService defines the primary port for the financials record.
type FinanceService interface {
	// GetFinancials returns the record with fixedOverheadHourly derived
	// from current staff.
	GetFinancials(ctx context.Context) (*models.Financials, error)

	// UpdateFinancials applies a partial update to named fields.
	UpdateFinancials(ctx context.Context, req UpdateFinancialsRequest) (*models.Financials, error)

	// AddExpense routes a free-text expense to a named field or appends
	// it as a custom expense.
	AddExpense(ctx context.Context, req AddExpenseRequest) (*AddExpenseResponse, error)

	// DeleteCustomExpense removes a custom expense row.
	DeleteCustomExpense(ctx context.Context, id string) error
}

// UpdateFinancialsRequest maps field names to new amounts. Accepted keys
// are the monthly expense fields plus cashOnHand, debt and cashboxBalance.
type UpdateFinancialsRequest struct {
	Fields map[string]float64
}

// AddExpenseRequest contains a free-text expense.
type AddExpenseRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// AddExpenseResponse reports where an expense landed.
// Exactly one of RoutedTo and Custom is set.
type AddExpenseResponse struct {
	RoutedTo   models.ExpenseField   `json:"routedTo,omitempty"`
	Custom     *models.CustomExpense `json:"custom,omitempty"`
	Financials *models.Financials    `json:"financials"`
}
