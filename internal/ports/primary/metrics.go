package primary

import (
	"context"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
)

// MetricsService defines the primary port for Firm Metrics Engine reads.
// Every call derives from a fresh snapshot.
type MetricsService interface {
	// Dashboard returns every engine output.
	Dashboard(ctx context.Context) (*metrics.Dashboard, error)

	// DailyBurn returns today's burn, runway and health.
	DailyBurn(ctx context.Context) (*BurnReport, error)

	// WeeklyReport returns the P&L, client mix and staff audit of the
	// current week of the given kind.
	WeeklyReport(ctx context.Context, kind metrics.WindowKind) (*WeeklyReport, error)
}

// BurnReport contains today's burn metrics.
type BurnReport struct {
	Burn       metrics.DailyBurn     `json:"burn"`
	Runway     metrics.Runway        `json:"runway"`
	Health     metrics.BurnHealth    `json:"health"`
	Overhead   metrics.Overhead      `json:"overhead"`
	CashOnHand float64               `json:"cashOnHand"`
	Staff      metrics.StaffCapacity `json:"staff"`
}

// WeeklyReport contains one week's figures and the snapshot they came from.
type WeeklyReport struct {
	PL       metrics.WeeklyPL          `json:"pl"`
	Clients  metrics.ClientMix         `json:"clients"`
	Staff    []metrics.StaffEfficiency `json:"staff"`
	Burn     BurnReport                `json:"burn"`
	Snapshot *models.Snapshot          `json:"-"`
}
