// Package tasklog contains the pure business logic for logging staff work.
// This is part of the Functional Core - no I/O, only pure functions.
package tasklog

import (
	"fmt"
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

// LogContext provides context for task logging guards.
// Populated by the caller with pre-fetched employee and case lookups.
type LogContext struct {
	EmployeeID     string
	EmployeeExists bool
	Description    string
	Hours          float64
	BillingType    models.TaskBillingType
	BillableRate   float64
	ClientID       string
	Client         *models.Client // nil when ClientID was not found
}

// CanLogTask evaluates whether a task can be logged.
// Rules:
//   - employee, description and positive hours are required
//   - billable tasks need a non-negative rate
//   - flat-fee tasks need a case that is an active flat-fee client
func CanLogTask(ctx LogContext) GuardResult {
	if ctx.EmployeeID == "" {
		return GuardResult{Allowed: false, Reason: "employee is required"}
	}
	if !ctx.EmployeeExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("employee %s not found", ctx.EmployeeID)}
	}
	if strings.TrimSpace(ctx.Description) == "" {
		return GuardResult{Allowed: false, Reason: "task description is required"}
	}
	if ctx.Hours <= 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("hours must be greater than zero (got %g)", ctx.Hours)}
	}

	switch ctx.BillingType {
	case models.TaskBillingBillable:
		if ctx.BillableRate < 0 {
			return GuardResult{Allowed: false, Reason: "billable rate cannot be negative"}
		}
	case models.TaskBillingFlatFee:
		if ctx.ClientID == "" {
			return GuardResult{Allowed: false, Reason: "flat fee tasks require a case"}
		}
		if ctx.Client == nil {
			return GuardResult{Allowed: false, Reason: fmt.Sprintf("case %s not found", ctx.ClientID)}
		}
		if !ctx.Client.IsActiveFlatFee() {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("case %q is not an active flat fee case", ctx.Client.Name),
			}
		}
	default:
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid billing type %q (expected billable or flat_fee)", ctx.BillingType)}
	}
	return GuardResult{Allowed: true}
}
