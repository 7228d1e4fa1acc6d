// Package cashbox contains the pure business logic for the cashbox ledger.
// This is part of the Functional Core - no I/O, only pure functions.
package cashbox

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/firmos/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CategoriesFor returns the valid categories for a cash direction.
func CategoriesFor(txType string) []string {
	switch txType {
	case models.CashIn:
		return models.DepositCategories
	case models.CashOut:
		return models.WithdrawalCategories
	}
	return nil
}

// CanRecordTransaction evaluates whether a cash transaction may be recorded.
// Rules:
//   - amount must be positive
//   - description is required
//   - type is in or out, payment method is cash or check
//   - category must belong to the direction
func CanRecordTransaction(tx models.CashTransaction) GuardResult {
	if tx.Amount <= 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("amount must be greater than zero (got %.2f)", tx.Amount)}
	}
	if strings.TrimSpace(tx.Description) == "" {
		return GuardResult{Allowed: false, Reason: "description is required"}
	}
	if tx.Type != models.CashIn && tx.Type != models.CashOut {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid transaction type %q (expected in or out)", tx.Type)}
	}
	if tx.PaymentMethod != models.PaymentCash && tx.PaymentMethod != models.PaymentCheck {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid payment method %q (expected cash or check)", tx.PaymentMethod)}
	}
	if !slices.Contains(CategoriesFor(tx.Type), tx.Category) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("category %q is not valid for %s transactions", tx.Category, tx.Type),
		}
	}
	return GuardResult{Allowed: true}
}
