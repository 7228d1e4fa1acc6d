package metrics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/firmos/internal/models"
)

func TestValueTask(t *testing.T) {
	paralegal := models.Employee{ID: "e1", HourlyCost: 20}

	tests := []struct {
		name string
		in   TaskInput
		want TaskValuation
	}{
		{
			name: "flat fee share of contract",
			in: TaskInput{
				Employee:       paralegal,
				Hours:          5,
				BillingType:    models.TaskBillingFlatFee,
				Client:         &models.Client{EstimatedHours: 50, FlatFeeAmount: 5000},
				HourlyOverhead: 10,
			},
			want: TaskValuation{
				LaborCost:      100,
				OverheadCost:   50,
				ProductionCost: 150,
				BillableValue:  500,
				ProfitOrLoss:   350,
				Profitable:     true,
			},
		},
		{
			name: "billable at manual rate",
			in: TaskInput{
				Employee:       paralegal,
				Hours:          2,
				BillingType:    models.TaskBillingBillable,
				BillableRate:   15,
				HourlyOverhead: 5,
			},
			want: TaskValuation{
				LaborCost:      40,
				OverheadCost:   10,
				ProductionCost: 50,
				BillableValue:  30,
				ProfitOrLoss:   -20,
				Profitable:     false,
			},
		},
		{
			name: "break even counts as profitable",
			in: TaskInput{
				Employee:     paralegal,
				Hours:        1,
				BillingType:  models.TaskBillingBillable,
				BillableRate: 20,
			},
			want: TaskValuation{
				LaborCost:      20,
				ProductionCost: 20,
				BillableValue:  20,
				Profitable:     true,
			},
		},
		{
			name: "zero estimated hours treated as one",
			in: TaskInput{
				Employee:    paralegal,
				Hours:       2,
				BillingType: models.TaskBillingFlatFee,
				Client:      &models.Client{FlatFeeAmount: 300},
			},
			want: TaskValuation{
				LaborCost:      40,
				ProductionCost: 40,
				BillableValue:  600,
				ProfitOrLoss:   560,
				Profitable:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueTask(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ValueTask() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlatFeeProgress(t *testing.T) {
	tests := []struct {
		name   string
		client models.Client
		want   float64
	}{
		{"partial", models.Client{EstimatedHours: 40, HoursLogged: 10}, 25},
		{"overrun clamps for display", models.Client{EstimatedHours: 40, HoursLogged: 55}, 100},
		{"nothing logged", models.Client{EstimatedHours: 40}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlatFeeProgress(tt.client); got != tt.want {
				t.Errorf("FlatFeeProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlatFeeValuePerHour(t *testing.T) {
	c := models.Client{FlatFeeAmount: 5000, EstimatedHours: 50}
	if got := FlatFeeValuePerHour(c); got != 100 {
		t.Errorf("FlatFeeValuePerHour() = %v, want 100", got)
	}
}
