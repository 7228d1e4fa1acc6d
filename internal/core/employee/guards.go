// Package employee contains the pure business logic for staff records.
// This is part of the Functional Core - no I/O, only pure functions.
package employee

import (
	"fmt"
	"strings"

	"github.com/example/firmos/internal/models"
)

// TargetMultiplier scales an hourly cost into a default daily value target.
const TargetMultiplier = 3.0

// HoursPerYear converts an annual salary to an hourly rate for targets.
const HoursPerYear = 2080.0

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

// CanSaveEmployee evaluates whether an employee record is complete.
// Rules: name is required, hourlyCost or salary must be set, no negatives.
func CanSaveEmployee(e models.Employee) GuardResult {
	if strings.TrimSpace(e.Name) == "" {
		return GuardResult{Allowed: false, Reason: "employee name is required"}
	}
	if e.HourlyCost < 0 || e.Salary < 0 || e.DailyHours < 0 || e.DailyTarget < 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("employee %q has a negative cost or schedule value", e.Name)}
	}
	if e.HourlyCost == 0 && e.Salary == 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("employee %q needs an hourly cost or a salary", e.Name)}
	}
	return GuardResult{Allowed: true}
}

// ApplyIntakeDefaults fills the fields an intake form may leave blank.
func ApplyIntakeDefaults(e models.Employee) models.Employee {
	if strings.TrimSpace(e.Role) == "" {
		e.Role = models.DefaultEmployeeRole
	}
	if e.DailyHours <= 0 {
		e.DailyHours = models.DefaultDailyHours
	}
	if e.DailyTarget <= 0 {
		rate := e.HourlyCost
		if rate <= 0 {
			rate = e.Salary / HoursPerYear
		}
		e.DailyTarget = rate * TargetMultiplier
	}
	return e
}
