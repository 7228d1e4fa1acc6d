package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/example/firmos/internal/models"
)

// WindowKind names a week definition.
type WindowKind string

const (
	// WindowFiscal runs Wednesday through Tuesday.
	WindowFiscal WindowKind = "fiscal"
	// WindowCalendar runs Monday through Sunday.
	WindowCalendar WindowKind = "calendar"
)

// ParseWindowKind maps a query value to a window kind. Empty means fiscal.
func ParseWindowKind(s string) (WindowKind, error) {
	switch WindowKind(s) {
	case "", WindowFiscal:
		return WindowFiscal, nil
	case WindowCalendar:
		return WindowCalendar, nil
	}
	return "", fmt.Errorf("unknown week window %q (expected fiscal or calendar)", s)
}

// Window is an inclusive reporting period.
type Window struct {
	Kind  WindowKind `json:"kind"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// Contains reports whether t falls inside the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Week returns the window of the given kind containing today.
func Week(kind WindowKind, today time.Time) Window {
	if kind == WindowCalendar {
		return CalendarWeek(today)
	}
	return FiscalWeek(today)
}

// FiscalWeek returns the Wednesday-to-Tuesday week containing today.
func FiscalWeek(today time.Time) Window {
	daysSinceWed := (int(today.Weekday()) - int(time.Wednesday) + 7) % 7
	return weekFrom(WindowFiscal, today, daysSinceWed)
}

// CalendarWeek returns the Monday-to-Sunday week containing today.
func CalendarWeek(today time.Time) Window {
	daysSinceMon := (int(today.Weekday()) - int(time.Monday) + 7) % 7
	return weekFrom(WindowCalendar, today, daysSinceMon)
}

func weekFrom(kind WindowKind, today time.Time, back int) Window {
	y, m, d := today.Date()
	loc := today.Location()
	start := time.Date(y, m, d-back, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d-back+6, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return Window{Kind: kind, Start: start, End: end}
}

// ParseDay parses a stored record date. Bare YYYY-MM-DD dates are anchored
// to local noon so they never slip across a day boundary; RFC3339 values
// are converted into loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if len(s) == len(models.DateLayout) {
		d, err := time.ParseInLocation(models.DateLayout, s, loc)
		if err != nil {
			return time.Time{}, err
		}
		return d.Add(12 * time.Hour), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// WeeklyPL is the profit and loss of one window.
// EfficiencyRatio is for display only: its denominator is floored at 1 so a
// week without expenses does not divide by zero.
type WeeklyPL struct {
	Window          Window  `json:"window"`
	Income          float64 `json:"income"`
	LaborCost       float64 `json:"labor_cost"`
	ProductionCost  float64 `json:"production_cost"`
	FixedOverhead   float64 `json:"fixed_overhead"`
	Expenses        float64 `json:"expenses"`
	Net             float64 `json:"net"`
	EfficiencyRatio float64 `json:"efficiency_ratio"`
	IncomeEntries   int     `json:"income_entries"`
	TaskLogs        int     `json:"task_logs"`
}

// ComputeWeeklyPL sums income and labor inside the window and charges seven
// days of fixed overhead. Records with unparseable dates are skipped.
func ComputeWeeklyPL(w Window, income []models.IncomeEntry, logs []models.TaskLog, dailyFixedOverhead float64) WeeklyPL {
	loc := w.Start.Location()
	pl := WeeklyPL{Window: w, FixedOverhead: dailyFixedOverhead * 7}

	for _, e := range income {
		d, err := ParseDay(e.Date, loc)
		if err != nil || !w.Contains(d) {
			continue
		}
		pl.Income += orZero(e.Amount)
		pl.IncomeEntries++
	}
	for _, l := range logs {
		d, err := ParseDay(l.Date, loc)
		if err != nil || !w.Contains(d) {
			continue
		}
		pl.LaborCost += orZero(l.LaborCost)
		pl.ProductionCost += orZero(l.ProductionCost)
		pl.TaskLogs++
	}

	pl.Expenses = pl.LaborCost + pl.FixedOverhead
	pl.Net = pl.Income - pl.Expenses
	pl.EfficiencyRatio = pl.Income / math.Max(pl.Expenses, 1)
	return pl
}

// StaffEfficiency is one employee's logged work inside a window.
// ROIMultiplier is productionCost/laborCost, or 1 with no labor cost.
type StaffEfficiency struct {
	EmployeeID      string  `json:"employee_id"`
	Name            string  `json:"name"`
	Hours           float64 `json:"hours"`
	LaborCost       float64 `json:"labor_cost"`
	ProductionCost  float64 `json:"production_cost"`
	ROIMultiplier   float64 `json:"roi_multiplier"`
	Underperforming bool    `json:"underperforming"`
}

// ComputeStaffEfficiency audits each employee's logs inside the window.
func ComputeStaffEfficiency(w Window, employees []models.Employee, logs []models.TaskLog) []StaffEfficiency {
	loc := w.Start.Location()
	byEmployee := make(map[string]*StaffEfficiency, len(employees))
	out := make([]StaffEfficiency, len(employees))
	for i, e := range employees {
		out[i] = StaffEfficiency{EmployeeID: e.ID, Name: e.Name}
		byEmployee[e.ID] = &out[i]
	}
	for _, l := range logs {
		s, ok := byEmployee[l.EmployeeID]
		if !ok {
			continue
		}
		d, err := ParseDay(l.Date, loc)
		if err != nil || !w.Contains(d) {
			continue
		}
		s.Hours += orZero(l.Hours)
		s.LaborCost += orZero(l.LaborCost)
		s.ProductionCost += orZero(l.ProductionCost)
	}
	for i := range out {
		out[i].ROIMultiplier = 1
		if out[i].LaborCost > 0 {
			out[i].ROIMultiplier = out[i].ProductionCost / out[i].LaborCost
		}
		out[i].Underperforming = out[i].ROIMultiplier < 1
	}
	return out
}

// CommunicationOverdueDays is how long a client may go without contact.
const CommunicationOverdueDays = 14

// CommunicationOverdue reports whether more than 14 whole days have passed
// since the client was last contacted. A client never contacted is not flagged.
func CommunicationOverdue(c models.Client, now time.Time) bool {
	if c.LastCommunication.IsZero() {
		return false
	}
	days := math.Floor(now.Sub(c.LastCommunication).Hours() / 24)
	return days > CommunicationOverdueDays
}

// ClientMix counts clients by status for a reporting window.
type ClientMix struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	AtRisk      int `json:"at_risk"`
	Churned     int `json:"churned"`
	NewThisWeek int `json:"new_this_week"`
}

// ComputeClientMix counts clients by status. New clients are active ones
// whose last communication falls inside the window.
func ComputeClientMix(clients []models.Client, w Window) ClientMix {
	mix := ClientMix{Total: len(clients)}
	for _, c := range clients {
		switch c.Status {
		case models.ClientStatusActive:
			mix.Active++
			if w.Contains(c.LastCommunication) {
				mix.NewThisWeek++
			}
		case models.ClientStatusRisk:
			mix.AtRisk++
		case models.ClientStatusChurned:
			mix.Churned++
		}
	}
	return mix
}
