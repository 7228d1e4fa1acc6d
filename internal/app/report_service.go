package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	metrics  primary.MetricsService
	writer   secondary.ReportWriter
	firmName string
	now      func() time.Time
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(metricsService primary.MetricsService, writer secondary.ReportWriter, firmName string) *ReportServiceImpl {
	return &ReportServiceImpl{
		metrics:  metricsService,
		writer:   writer,
		firmName: firmName,
		now:      time.Now,
	}
}

// ExportWeekly writes the current week's report, the cash ledger and the
// task logs inside the window.
func (s *ReportServiceImpl) ExportWeekly(ctx context.Context, kind metrics.WindowKind, w io.Writer) error {
	weekly, err := s.metrics.WeeklyReport(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to build weekly report: %w", err)
	}
	snap := weekly.Snapshot

	report := &secondary.Report{
		FirmName:      s.firmName,
		GeneratedAt:   s.now(),
		Week:          weekly.PL,
		Burn:          weekly.Burn.Burn,
		Runway:        weekly.Burn.Runway,
		Health:        weekly.Burn.Health,
		Clients:       weekly.Clients,
		Staff:         weekly.Staff,
		EmployeeNames: make(map[string]string, len(snap.Employees)),
		Transactions:  snap.CashboxTransactions,
	}
	for _, e := range snap.Employees {
		report.EmployeeNames[e.ID] = e.Name
	}

	loc := weekly.PL.Window.Start.Location()
	for _, l := range snap.TaskLogs {
		if d, err := metrics.ParseDay(l.Date, loc); err == nil && weekly.PL.Window.Contains(d) {
			report.TaskLogs = append(report.TaskLogs, l)
		}
	}

	return s.writer.WriteReport(w, report)
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
