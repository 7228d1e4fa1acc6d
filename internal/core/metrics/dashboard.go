package metrics

import (
	"time"

	"github.com/example/firmos/internal/core/cashbox"
	"github.com/example/firmos/internal/models"
)

// Dashboard is every engine output for one snapshot.
type Dashboard struct {
	AsOf               time.Time         `json:"as_of"`
	Overhead           Overhead          `json:"overhead"`
	Burn               DailyBurn         `json:"burn"`
	Runway             Runway            `json:"runway"`
	Health             BurnHealth        `json:"health"`
	Week               WeeklyPL          `json:"week"`
	Clients            ClientMix         `json:"clients"`
	Staff              []StaffEfficiency `json:"staff"`
	StaffCount         int               `json:"staff_count"`
	DailyBillingTarget float64           `json:"daily_billing_target"`
	CashOnHand         float64           `json:"cash_on_hand"`
	Debt               float64           `json:"debt"`
	CashboxBalance     float64           `json:"cashbox_balance"`
	LedgerBalance      float64           `json:"ledger_balance"`
	OverdueClients     []string          `json:"overdue_clients"`
	OpenTickets        int               `json:"open_tickets"`
}

// Summarize derives the dashboard from a snapshot at now, using the fiscal week.
func Summarize(s models.Snapshot, now time.Time) Dashboard {
	overhead := ComputeOverhead(s.Financials, s.Employees)
	burn := ComputeDailyBurn(s.TaskLogs, s.Financials, now)
	week := FiscalWeek(now)
	capacity := ComputeStaffCapacity(s.Employees)

	d := Dashboard{
		AsOf:               now,
		Overhead:           overhead,
		Burn:               burn,
		Runway:             ComputeRunway(s.Financials.CashOnHand, burn.TotalDailyBurn),
		Health:             AssessBurnHealth(burn),
		Week:               ComputeWeeklyPL(week, s.IncomeEntries, s.TaskLogs, overhead.DailyFixedOverhead),
		Clients:            ComputeClientMix(s.Clients, week),
		Staff:              ComputeStaffEfficiency(week, s.Employees, s.TaskLogs),
		StaffCount:         capacity.Count,
		DailyBillingTarget: capacity.DailyBillingTarget,
		CashOnHand:         s.Financials.CashOnHand,
		Debt:               s.Financials.Debt,
		CashboxBalance:     s.Financials.CashboxBalance,
		LedgerBalance:      cashbox.Fold(s.CashboxTransactions),
		OverdueClients:     []string{},
	}
	for _, c := range s.Clients {
		if c.Status != models.ClientStatusChurned && CommunicationOverdue(c, now) {
			d.OverdueClients = append(d.OverdueClients, c.Name)
		}
	}
	for _, t := range s.Tickets {
		if t.IsOpen() {
			d.OpenTickets++
		}
	}
	return d
}
