package employee

import (
	"testing"

	"github.com/example/firmos/internal/models"
)

func TestCanSaveEmployee(t *testing.T) {
	tests := []struct {
		name        string
		employee    models.Employee
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "hourly employee",
			employee:    models.Employee{Name: "Ana", HourlyCost: 22},
			wantAllowed: true,
		},
		{
			name:        "salaried employee",
			employee:    models.Employee{Name: "Ben", Salary: 60000},
			wantAllowed: true,
		},
		{
			name:        "missing name",
			employee:    models.Employee{HourlyCost: 22},
			wantAllowed: false,
			wantReason:  "employee name is required",
		},
		{
			name:        "missing cost basis",
			employee:    models.Employee{Name: "Cam"},
			wantAllowed: false,
			wantReason:  `employee "Cam" needs an hourly cost or a salary`,
		},
		{
			name:        "negative rate",
			employee:    models.Employee{Name: "Dee", HourlyCost: -1},
			wantAllowed: false,
			wantReason:  `employee "Dee" has a negative cost or schedule value`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSaveEmployee(tt.employee)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanSaveEmployee() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanSaveEmployee() Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestApplyIntakeDefaults(t *testing.T) {
	got := ApplyIntakeDefaults(models.Employee{Name: "Ana", HourlyCost: 20})
	if got.Role != "Staff" {
		t.Errorf("Role = %q, want Staff", got.Role)
	}
	if got.DailyHours != 8 {
		t.Errorf("DailyHours = %v, want 8", got.DailyHours)
	}
	if got.DailyTarget != 60 {
		t.Errorf("DailyTarget = %v, want 60", got.DailyTarget)
	}

	salaried := ApplyIntakeDefaults(models.Employee{Name: "Ben", Salary: 41600, Role: "Paralegal", DailyHours: 6})
	if salaried.Role != "Paralegal" || salaried.DailyHours != 6 {
		t.Errorf("explicit fields were overwritten: %+v", salaried)
	}
	if salaried.DailyTarget != 60 {
		t.Errorf("DailyTarget = %v, want 60 (41600/2080*3)", salaried.DailyTarget)
	}
}
