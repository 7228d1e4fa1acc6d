package app

import (
	"context"
	"time"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/observability"
	"github.com/example/firmos/internal/ports/primary"
)

// MetricsServiceImpl implements the MetricsService interface.
// Every read derives from a fresh snapshot and refreshes the firm gauges.
type MetricsServiceImpl struct {
	snapshots primary.SnapshotService
	now       func() time.Time
}

// NewMetricsService creates a new MetricsService with injected dependencies.
func NewMetricsService(snapshots primary.SnapshotService) *MetricsServiceImpl {
	return &MetricsServiceImpl{
		snapshots: snapshots,
		now:       time.Now,
	}
}

// Dashboard returns every engine output.
func (s *MetricsServiceImpl) Dashboard(ctx context.Context) (*metrics.Dashboard, error) {
	snap, _, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	d := metrics.Summarize(*snap, now)
	recordGauges(burnReport(*snap, now))
	observability.CashboxBalance.Set(d.CashboxBalance)
	return &d, nil
}

// DailyBurn returns today's burn, runway and health.
func (s *MetricsServiceImpl) DailyBurn(ctx context.Context) (*primary.BurnReport, error) {
	snap, _, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	report := burnReport(*snap, s.now())
	recordGauges(report)
	return &report, nil
}

// WeeklyReport returns the P&L, client mix and staff audit of the current
// week of the given kind.
func (s *MetricsServiceImpl) WeeklyReport(ctx context.Context, kind metrics.WindowKind) (*primary.WeeklyReport, error) {
	snap, _, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	window := metrics.Week(kind, now)
	burn := burnReport(*snap, now)
	recordGauges(burn)

	return &primary.WeeklyReport{
		PL:       metrics.ComputeWeeklyPL(window, snap.IncomeEntries, snap.TaskLogs, burn.Overhead.DailyFixedOverhead),
		Clients:  metrics.ComputeClientMix(snap.Clients, window),
		Staff:    metrics.ComputeStaffEfficiency(window, snap.Employees, snap.TaskLogs),
		Burn:     burn,
		Snapshot: snap,
	}, nil
}

func burnReport(snap models.Snapshot, now time.Time) primary.BurnReport {
	burn := metrics.ComputeDailyBurn(snap.TaskLogs, snap.Financials, now)
	return primary.BurnReport{
		Burn:       burn,
		Runway:     metrics.ComputeRunway(snap.Financials.CashOnHand, burn.TotalDailyBurn),
		Health:     metrics.AssessBurnHealth(burn),
		Overhead:   metrics.ComputeOverhead(snap.Financials, snap.Employees),
		CashOnHand: snap.Financials.CashOnHand,
		Staff:      metrics.ComputeStaffCapacity(snap.Employees),
	}
}

func recordGauges(r primary.BurnReport) {
	observability.CashOnHand.Set(r.CashOnHand)
	observability.DailyBurn.Set(r.Burn.TotalDailyBurn)
	observability.HourlyOverhead.Set(r.Overhead.HourlyOverhead)
	if r.Runway.Unbounded {
		observability.RunwayDays.Set(-1)
	} else {
		observability.RunwayDays.Set(float64(r.Runway.Days))
	}
}

// Ensure MetricsServiceImpl implements the interface
var _ primary.MetricsService = (*MetricsServiceImpl)(nil)
