// Package income contains the pure business logic for income entries.
// This is part of the Functional Core - no I/O, only pure functions.
package income

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/example/firmos/internal/core/metrics"
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

// CanRecordIncome evaluates whether an income entry may be recorded.
// Rules:
//   - client name is required
//   - amount must be positive
//   - date must be a calendar day or an RFC3339 timestamp
//   - category and method must be known
func CanRecordIncome(e models.IncomeEntry) GuardResult {
	if strings.TrimSpace(e.ClientName) == "" {
		return GuardResult{Allowed: false, Reason: "client name is required"}
	}
	if e.Amount <= 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("income amount must be greater than zero (got %.2f)", e.Amount)}
	}
	if _, err := metrics.ParseDay(e.Date, time.Local); err != nil {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid income date %q", e.Date)}
	}
	if !slices.Contains(models.IncomeCategories, e.Category) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid income category %q (expected one of %s)", e.Category, strings.Join(models.IncomeCategories, ", ")),
		}
	}
	if !slices.Contains(models.IncomeMethods, e.Method) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid payment method %q (expected one of %s)", e.Method, strings.Join(models.IncomeMethods, ", ")),
		}
	}
	return GuardResult{Allowed: true}
}
