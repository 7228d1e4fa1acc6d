// Package wire provides dependency injection for firmos.
// It builds every service once per process from the loaded config.
package wire

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/firmos/internal/adapters/gemini"
	"github.com/example/firmos/internal/adapters/snapshotfile"
	"github.com/example/firmos/internal/adapters/sqlite"
	"github.com/example/firmos/internal/adapters/xlsx"
	"github.com/example/firmos/internal/app"
	"github.com/example/firmos/internal/config"
	"github.com/example/firmos/internal/db"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// App holds every wired service for one process.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sql.DB
	Feed   *app.Feed

	Employees primary.EmployeeService
	TaskLogs  primary.TaskLogService
	Clients   primary.ClientService
	CaseTypes primary.CaseTypeService
	Finance   primary.FinanceService
	Cashbox   primary.CashboxService
	Income    primary.IncomeService
	Tickets   primary.TicketService
	Logs      primary.LogService
	Snapshots primary.SnapshotService
	Metrics   primary.MetricsService
	Advisor   primary.AdvisorService
	Reports   primary.ReportService

	// Syncer is nil when the local cache is disabled.
	Syncer *app.CacheSyncer
}

// NewLogger builds the process logger. verbose forces debug level.
func NewLogger(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if !cfg.JSON {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Build opens the record store and wires every service.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	database, err := db.Open(ctx, cfg.Store.Path, logger)
	if err != nil {
		return nil, err
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	employeeRepo := sqlite.NewEmployeeRepository(database)
	taskLogRepo := sqlite.NewTaskLogRepository(database)
	clientRepo := sqlite.NewClientRepository(database)
	caseTypeRepo := sqlite.NewCaseTypeRepository(database)
	financialsRepo := sqlite.NewFinancialsRepository(database)
	cashRepo := sqlite.NewCashTransactionRepository(database)
	incomeRepo := sqlite.NewIncomeRepository(database)
	ticketRepo := sqlite.NewTicketRepository(database)
	activityRepo := sqlite.NewActivityLogRepository(database)

	feed := app.NewFeed(app.DefaultFeedBuffer)
	changes := app.NewChangeRecorder(sqlite.NewLogWriterAdapter(activityRepo), feed, logger.Named("changes"))

	var cache secondary.SnapshotCache
	if cfg.Cache.Enabled {
		fileCache, err := snapshotfile.NewCache(cfg.Cache.DataDir)
		if err != nil {
			database.Close()
			return nil, err
		}
		cache = fileCache
	}

	snapshots := app.NewSnapshotService(app.Repositories{
		Employees:    employeeRepo,
		TaskLogs:     taskLogRepo,
		Clients:      clientRepo,
		CaseTypes:    caseTypeRepo,
		Financials:   financialsRepo,
		Transactions: cashRepo,
		Income:       incomeRepo,
		Tickets:      ticketRepo,
	}, cache, logger.Named("snapshot"))
	metricsService := app.NewMetricsService(snapshots)

	var completer secondary.ChatCompleter
	if cfg.AdvisorConfigured() {
		c, err := gemini.NewCompleter(ctx, cfg.Advisor.APIKey, cfg.Advisor.Model)
		if err != nil {
			// The advisor degrades to its not-configured reply.
			logger.Warn("advisor unavailable", zap.Error(err))
		} else {
			completer = c
		}
	}

	a := &App{
		Config:    cfg,
		Logger:    logger,
		DB:        database,
		Feed:      feed,
		Employees: app.NewEmployeeService(employeeRepo, changes),
		TaskLogs:  app.NewTaskLogService(taskLogRepo, employeeRepo, clientRepo, financialsRepo, changes),
		Clients:   app.NewClientService(clientRepo, caseTypeRepo, changes),
		CaseTypes: app.NewCaseTypeService(caseTypeRepo, changes),
		Finance:   app.NewFinanceService(financialsRepo, employeeRepo, changes),
		Cashbox:   app.NewCashboxService(cashRepo, financialsRepo, changes),
		Income:    app.NewIncomeService(incomeRepo, changes),
		Tickets:   app.NewTicketService(ticketRepo, changes),
		Logs:      app.NewLogService(activityRepo),
		Snapshots: snapshots,
		Metrics:   metricsService,
		Advisor:   app.NewAdvisorService(completer, snapshots, logger.Named("advisor")),
		Reports:   app.NewReportService(metricsService, xlsx.NewReportWriter(), cfg.Server.FirmName),
	}
	if cache != nil {
		a.Syncer = app.NewCacheSyncer(feed, snapshots, cache, logger.Named("cache"))
	}
	return a, nil
}

// Close releases the record store.
func (a *App) Close() error {
	return a.DB.Close()
}
