package metrics

import (
	"math"

	"github.com/example/firmos/internal/models"
)

// TaskInput describes a task at logging time.
// Client is only consulted for flat-fee tasks.
type TaskInput struct {
	Employee       models.Employee
	Hours          float64
	BillingType    models.TaskBillingType
	BillableRate   float64
	Client         *models.Client
	HourlyOverhead float64
}

// TaskValuation is the frozen cost and value breakdown of a logged task.
type TaskValuation struct {
	LaborCost      float64 `json:"laborCost"`
	OverheadCost   float64 `json:"overheadCost"`
	ProductionCost float64 `json:"productionCost"`
	BillableValue  float64 `json:"billableValue"`
	ProfitOrLoss   float64 `json:"profitOrLoss"`
	Profitable     bool    `json:"profitable"`
}

// ValueTask computes labor, overhead and production cost and the billable
// value of a task. Flat-fee tasks take a share of the contract proportional
// to hours over the case's estimated hours.
func ValueTask(in TaskInput) TaskValuation {
	v := TaskValuation{
		LaborCost:    in.Hours * EffectiveHourlyCost(in.Employee),
		OverheadCost: in.Hours * in.HourlyOverhead,
	}
	v.ProductionCost = v.LaborCost + v.OverheadCost

	switch in.BillingType {
	case models.TaskBillingFlatFee:
		if in.Client != nil {
			v.BillableValue = in.Hours / estimatedHoursOrOne(*in.Client) * in.Client.FlatFeeAmount
		}
	default:
		v.BillableValue = in.Hours * in.BillableRate
	}

	v.ProfitOrLoss = v.BillableValue - v.ProductionCost
	v.Profitable = v.ProfitOrLoss >= 0
	return v
}

// FlatFeeProgress is hoursLogged over estimatedHours as a percentage,
// clamped to 100 for display. The stored hoursLogged is never capped.
func FlatFeeProgress(c models.Client) float64 {
	return math.Min(c.HoursLogged/estimatedHoursOrOne(c)*100, 100)
}

// FlatFeeValuePerHour is the contracted value of one budgeted hour.
func FlatFeeValuePerHour(c models.Client) float64 {
	return c.FlatFeeAmount / estimatedHoursOrOne(c)
}

func estimatedHoursOrOne(c models.Client) float64 {
	if c.EstimatedHours > 0 {
		return c.EstimatedHours
	}
	return 1
}
