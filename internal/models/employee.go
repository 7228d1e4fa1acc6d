// Package models contains domain types for firm records.
// Persistence lives in internal/adapters/sqlite; derivations live in internal/core.
package models

// DefaultDailyHours is assumed for employees without a positive daily schedule.
const DefaultDailyHours = 8.0

// DefaultEmployeeRole is assigned at intake when no role is given.
const DefaultEmployeeRole = "Staff"

// Employee represents a staff member and the cost basis of their time.
// HourlyCost and Salary are alternatives: a positive HourlyCost wins.
type Employee struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	HourlyCost  float64 `json:"hourlyCost"`
	Salary      float64 `json:"salary,omitempty"` // annualized
	DailyHours  float64 `json:"dailyHours"`
	DailyTarget float64 `json:"dailyTarget"`
}

// HoursPerDay returns the employee's daily hours, defaulting to 8 when unset.
func (e Employee) HoursPerDay() float64 {
	if e.DailyHours > 0 {
		return e.DailyHours
	}
	return DefaultDailyHours
}
