package metrics

import (
	"math"
	"testing"

	"github.com/example/firmos/internal/models"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEffectiveHourlyCost(t *testing.T) {
	tests := []struct {
		name     string
		employee models.Employee
		want     float64
	}{
		{
			name:     "salary over 52 weeks of 40 hours",
			employee: models.Employee{Salary: 52000, DailyHours: 8},
			want:     25.0,
		},
		{
			name:     "hourly cost takes precedence over salary",
			employee: models.Employee{HourlyCost: 30, Salary: 999999, DailyHours: 8},
			want:     30.0,
		},
		{
			name:     "unset daily hours default to 8",
			employee: models.Employee{Salary: 52000},
			want:     25.0,
		},
		{
			name:     "part time salary uses own weekly hours",
			employee: models.Employee{Salary: 26000, DailyHours: 4},
			want:     25.0,
		},
		{
			name:     "unknown cost degrades to zero",
			employee: models.Employee{Name: "Volunteer"},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveHourlyCost(tt.employee)
			if !approxEqual(got, tt.want) {
				t.Errorf("EffectiveHourlyCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonthlyTotal(t *testing.T) {
	f := models.Financials{
		MonthlyLease: 1200,
		Payroll:      500,
		Clio:         100,
		Wifi:         80,
		StaffLunch:   20,
		CustomExpenses: []models.CustomExpense{
			{ID: "c1", Name: "Insurance", Amount: 200},
			{ID: "c2", Name: "Parking", Amount: 50},
		},
		CashOnHand: 10000, // not an expense
	}

	got := MonthlyTotal(f)
	if !approxEqual(got, 2150) {
		t.Errorf("MonthlyTotal() = %v, want %v", got, 2150.0)
	}

	if got := MonthlyTotal(models.Financials{}); got != 0 {
		t.Errorf("MonthlyTotal(empty) = %v, want 0", got)
	}
}

func TestHourlyOverhead(t *testing.T) {
	tests := []struct {
		name      string
		total     float64
		employees []models.Employee
		want      float64
	}{
		{
			name:      "apportioned over staff hours",
			total:     4000,
			employees: []models.Employee{{DailyHours: 8}, {DailyHours: 4}},
			want:      4000.0 / 240.0,
		},
		{
			name:      "unset hours count as 8",
			total:     3200,
			employees: []models.Employee{{}, {}},
			want:      10,
		},
		{
			name:  "no staff falls back to 160 hours",
			total: 1600,
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HourlyOverhead(tt.total, tt.employees)
			if !approxEqual(got, tt.want) {
				t.Errorf("HourlyOverhead() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDailyFixedOverheadIgnoresStaff(t *testing.T) {
	f := models.Financials{MonthlyLease: 4000}
	small := ComputeOverhead(f, []models.Employee{{DailyHours: 8}})
	large := ComputeOverhead(f, []models.Employee{{DailyHours: 8}, {DailyHours: 8}, {DailyHours: 4}})

	if small.DailyFixedOverhead != 200 || large.DailyFixedOverhead != 200 {
		t.Errorf("DailyFixedOverhead = %v / %v, want 200 for both", small.DailyFixedOverhead, large.DailyFixedOverhead)
	}
	if small.HourlyOverhead == large.HourlyOverhead {
		t.Errorf("HourlyOverhead should change with staff hours, both = %v", small.HourlyOverhead)
	}
}

func TestComputeStaffCapacity(t *testing.T) {
	tests := []struct {
		name      string
		employees []models.Employee
		want      StaffCapacity
	}{
		{"no staff", nil, StaffCapacity{}},
		{
			name:      "targets summed",
			employees: []models.Employee{{DailyTarget: 84}, {DailyTarget: 60}, {DailyTarget: 54}},
			want:      StaffCapacity{Count: 3, DailyBillingTarget: 198},
		},
		{
			name:      "unset target still counts the employee",
			employees: []models.Employee{{DailyTarget: 75}, {}},
			want:      StaffCapacity{Count: 2, DailyBillingTarget: 75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStaffCapacity(tt.employees); got != tt.want {
				t.Errorf("ComputeStaffCapacity() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
