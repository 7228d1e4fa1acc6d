// Package metrics contains the Firm Metrics Engine.
// This is part of the Functional Core - no I/O, only pure functions over
// record snapshots. The current time is always passed in by the caller.
package metrics

import (
	"math"

	"github.com/example/firmos/internal/models"
)

const (
	// OperatingDaysPerMonth is the assumed number of working days in a month.
	OperatingDaysPerMonth = 20.0
	// FallbackMonthlyStaffHours is one 8-hour employee for 20 days.
	FallbackMonthlyStaffHours = 160.0
	// WeeksPerYear converts an annual salary to a weekly wage.
	WeeksPerYear = 52.0
	// WorkDaysPerWeek converts daily hours to weekly hours.
	WorkDaysPerWeek = 5.0
)

// EffectiveHourlyCost resolves the hourly cost basis of an employee.
// A positive hourlyCost wins; otherwise salary / 52 / (dailyHours*5).
// Returns 0 when neither is known. Callers must treat 0 as unknown cost.
func EffectiveHourlyCost(e models.Employee) float64 {
	if e.HourlyCost > 0 {
		return e.HourlyCost
	}
	if e.Salary > 0 {
		return e.Salary / WeeksPerYear / (e.HoursPerDay() * WorkDaysPerWeek)
	}
	return 0
}

// MonthlyTotal sums every fixed monthly line item plus all custom expenses.
func MonthlyTotal(f models.Financials) float64 {
	var total float64
	for _, field := range models.MonthlyExpenseFields {
		total += orZero(f.Get(field))
	}
	for _, c := range f.CustomExpenses {
		total += orZero(c.Amount)
	}
	return total
}

// TotalDailyStaffHours sums each employee's daily hours (8 when unset).
func TotalDailyStaffHours(employees []models.Employee) float64 {
	var hours float64
	for _, e := range employees {
		hours += e.HoursPerDay()
	}
	return hours
}

// StaffCapacity is the headcount and the summed daily billing target.
type StaffCapacity struct {
	Count              int     `json:"count"`
	DailyBillingTarget float64 `json:"daily_billing_target"`
}

// ComputeStaffCapacity counts employees and sums their daily targets.
func ComputeStaffCapacity(employees []models.Employee) StaffCapacity {
	c := StaffCapacity{Count: len(employees)}
	for _, e := range employees {
		c.DailyBillingTarget += orZero(e.DailyTarget)
	}
	return c
}

// HourlyOverhead apportions the monthly total over staff hours.
// Used when valuing a task. Falls back to monthlyTotal/160 with no staff.
func HourlyOverhead(monthlyTotal float64, employees []models.Employee) float64 {
	monthlyStaffHours := TotalDailyStaffHours(employees) * OperatingDaysPerMonth
	if monthlyStaffHours > 0 {
		return monthlyTotal / monthlyStaffHours
	}
	return monthlyTotal / FallbackMonthlyStaffHours
}

// DailyFixedOverhead is monthlyTotal/20. It ignores staff hours and is
// deliberately not reconciled with HourlyOverhead.
func DailyFixedOverhead(monthlyTotal float64) float64 {
	return monthlyTotal / OperatingDaysPerMonth
}

// Overhead bundles both overhead normalizations of one monthly total.
type Overhead struct {
	MonthlyTotal       float64 `json:"monthly_total"`
	HourlyOverhead     float64 `json:"hourly_overhead"`
	DailyFixedOverhead float64 `json:"daily_fixed_overhead"`
}

// ComputeOverhead derives both overhead figures from financials and staff.
func ComputeOverhead(f models.Financials, employees []models.Employee) Overhead {
	total := MonthlyTotal(f)
	return Overhead{
		MonthlyTotal:       total,
		HourlyOverhead:     HourlyOverhead(total, employees),
		DailyFixedOverhead: DailyFixedOverhead(total),
	}
}

func orZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
