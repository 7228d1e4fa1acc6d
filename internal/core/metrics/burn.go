package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/example/firmos/internal/models"
)

// DailyBurn is the firm's cost for the current calendar day.
// HourlyBurnRate is nil when no hours were logged today: the rate is unknown,
// not zero and not infinite.
type DailyBurn struct {
	TotalDailyBurn     float64  `json:"total_daily_burn"`
	DailyPayroll       float64  `json:"daily_payroll"`
	DailyFixedOverhead float64  `json:"daily_fixed_overhead"`
	TotalDailyHours    float64  `json:"total_daily_hours"`
	HourlyBurnRate     *float64 `json:"hourly_burn_rate"`
}

// TodaysLogs returns the logs whose date equals today's local calendar date.
func TodaysLogs(logs []models.TaskLog, today time.Time) []models.TaskLog {
	day := today.Format(models.DateLayout)
	var out []models.TaskLog
	for _, l := range logs {
		if l.Date == day {
			out = append(out, l)
		}
	}
	return out
}

// ComputeDailyBurn derives burn metrics from today's logs and fixed overhead.
func ComputeDailyBurn(logs []models.TaskLog, f models.Financials, today time.Time) DailyBurn {
	b := DailyBurn{DailyFixedOverhead: DailyFixedOverhead(MonthlyTotal(f))}
	for _, l := range TodaysLogs(logs, today) {
		b.DailyPayroll += orZero(l.LaborCost)
		b.TotalDailyHours += orZero(l.Hours)
	}
	b.TotalDailyBurn = b.DailyPayroll + b.DailyFixedOverhead
	if b.TotalDailyHours > 0 {
		rate := b.TotalDailyBurn / b.TotalDailyHours
		b.HourlyBurnRate = &rate
	}
	return b
}

// Runway is the number of days cash on hand covers at the current burn.
type Runway struct {
	Days      int64 `json:"days"`
	Unbounded bool  `json:"unbounded"`
}

// ComputeRunway returns floor(cash/burn). Zero burn is unbounded; negative
// cash is already insolvent and reports 0 days.
func ComputeRunway(cashOnHand, totalDailyBurn float64) Runway {
	if cashOnHand < 0 {
		return Runway{}
	}
	if totalDailyBurn <= 0 {
		return Runway{Unbounded: true}
	}
	return Runway{Days: int64(math.Floor(cashOnHand / totalDailyBurn))}
}

func (r Runway) String() string {
	if r.Unbounded {
		return "∞"
	}
	if r.Days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", r.Days)
}

// DuplicationRiskMultiplier flags burns dominated by fixed overhead.
const DuplicationRiskMultiplier = 2.5

// Burn health labels
const (
	HealthLabelHealthy      = "HEALTHY"
	HealthLabelHighOverhead = "RISK: HIGH OVERHEAD"
)

// BurnHealth classifies the shape of today's burn.
type BurnHealth struct {
	OverheadDuplicationRisk bool    `json:"overhead_duplication_risk"`
	LaborShare              float64 `json:"labor_share"` // percent of burn that is payroll
	Label                   string  `json:"label"`
}

// AssessBurnHealth flags a burn whose total exceeds 2.5x payroll, which
// usually means an expense is tracked both as labor and as overhead.
func AssessBurnHealth(b DailyBurn) BurnHealth {
	h := BurnHealth{Label: HealthLabelHealthy}
	if b.DailyPayroll > 0 {
		h.OverheadDuplicationRisk = b.TotalDailyBurn > b.DailyPayroll*DuplicationRiskMultiplier
		if b.TotalDailyBurn > 0 {
			h.LaborShare = b.DailyPayroll / b.TotalDailyBurn * 100
		}
	}
	if h.OverheadDuplicationRisk {
		h.Label = HealthLabelHighOverhead
	}
	return h
}
