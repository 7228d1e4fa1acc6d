package metrics

import (
	"testing"
	"time"

	"github.com/example/firmos/internal/models"
)

func TestComputeDailyBurn(t *testing.T) {
	today := time.Date(2026, 10, 14, 15, 0, 0, 0, time.Local)
	f := models.Financials{MonthlyLease: 2000} // 100 per day

	logs := []models.TaskLog{
		{ID: "1", Date: "2026-10-14", Hours: 2, LaborCost: 50},
		{ID: "2", Date: "2026-10-14", Hours: 3, LaborCost: 90},
		{ID: "3", Date: "2026-10-13", Hours: 8, LaborCost: 400},
	}

	b := ComputeDailyBurn(logs, f, today)

	if b.DailyPayroll != 140 {
		t.Errorf("DailyPayroll = %v, want 140", b.DailyPayroll)
	}
	if b.TotalDailyHours != 5 {
		t.Errorf("TotalDailyHours = %v, want 5", b.TotalDailyHours)
	}
	if b.DailyFixedOverhead != 100 {
		t.Errorf("DailyFixedOverhead = %v, want 100", b.DailyFixedOverhead)
	}
	if b.TotalDailyBurn != 240 {
		t.Errorf("TotalDailyBurn = %v, want 240", b.TotalDailyBurn)
	}
	if b.HourlyBurnRate == nil || *b.HourlyBurnRate != 48 {
		t.Errorf("HourlyBurnRate = %v, want 48", b.HourlyBurnRate)
	}
}

func TestComputeDailyBurnWithoutHours(t *testing.T) {
	today := time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local)
	f := models.Financials{MonthlyLease: 2000, Payroll: 2000}
	logs := []models.TaskLog{{ID: "old", Date: "2026-10-01", Hours: 4, LaborCost: 100}}

	b := ComputeDailyBurn(logs, f, today)

	if b.HourlyBurnRate != nil {
		t.Errorf("HourlyBurnRate = %v, want nil", *b.HourlyBurnRate)
	}
	if b.DailyPayroll != 0 {
		t.Errorf("DailyPayroll = %v, want 0", b.DailyPayroll)
	}
	if b.TotalDailyBurn != b.DailyFixedOverhead {
		t.Errorf("TotalDailyBurn = %v, want fixed overhead %v", b.TotalDailyBurn, b.DailyFixedOverhead)
	}
}

func TestComputeRunway(t *testing.T) {
	tests := []struct {
		name       string
		cash       float64
		burn       float64
		want       Runway
		wantString string
	}{
		{"floors partial days", 1000, 300, Runway{Days: 3}, "3 days"},
		{"zero burn is unbounded", 1000, 0, Runway{Unbounded: true}, "∞"},
		{"negative cash is insolvent", -50, 100, Runway{}, "0 days"},
		{"negative cash with zero burn is insolvent", -50, 0, Runway{}, "0 days"},
		{"single day", 150, 100, Runway{Days: 1}, "1 day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRunway(tt.cash, tt.burn)
			if got != tt.want {
				t.Errorf("ComputeRunway() = %+v, want %+v", got, tt.want)
			}
			if got.String() != tt.wantString {
				t.Errorf("Runway.String() = %q, want %q", got.String(), tt.wantString)
			}
		})
	}
}

func TestAssessBurnHealth(t *testing.T) {
	tests := []struct {
		name      string
		burn      DailyBurn
		wantRisk  bool
		wantLabel string
		wantShare float64
	}{
		{
			name:      "payroll dominated burn is healthy",
			burn:      DailyBurn{DailyPayroll: 600, TotalDailyBurn: 800},
			wantLabel: HealthLabelHealthy,
			wantShare: 75,
		},
		{
			name:      "overhead above 2.5x payroll is flagged",
			burn:      DailyBurn{DailyPayroll: 100, TotalDailyBurn: 300},
			wantRisk:  true,
			wantLabel: HealthLabelHighOverhead,
			wantShare: 100.0 / 3.0,
		},
		{
			name:      "no payroll is never flagged",
			burn:      DailyBurn{TotalDailyBurn: 500},
			wantLabel: HealthLabelHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessBurnHealth(tt.burn)
			if got.OverheadDuplicationRisk != tt.wantRisk {
				t.Errorf("OverheadDuplicationRisk = %v, want %v", got.OverheadDuplicationRisk, tt.wantRisk)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if !approxEqual(got.LaborShare, tt.wantShare) {
				t.Errorf("LaborShare = %v, want %v", got.LaborShare, tt.wantShare)
			}
		})
	}
}
