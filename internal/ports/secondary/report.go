package secondary

import (
	"time"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
)

// Report is the weekly operating report handed to a ReportWriter.
type Report struct {
	FirmName      string
	GeneratedAt   time.Time
	Week          metrics.WeeklyPL
	Burn          metrics.DailyBurn
	Runway        metrics.Runway
	Health        metrics.BurnHealth
	Clients       metrics.ClientMix
	Staff         []metrics.StaffEfficiency
	EmployeeNames map[string]string
	Transactions  []models.CashTransaction
	TaskLogs      []models.TaskLog
}
