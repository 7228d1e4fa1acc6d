package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/observability"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// Repositories groups every Record Store collection.
type Repositories struct {
	Employees    secondary.EmployeeRepository
	TaskLogs     secondary.TaskLogRepository
	Clients      secondary.ClientRepository
	CaseTypes    secondary.CaseTypeRepository
	Financials   secondary.FinancialsRepository
	Transactions secondary.CashTransactionRepository
	Income       secondary.IncomeRepository
	Tickets      secondary.TicketRepository
}

// SnapshotServiceImpl implements the SnapshotService interface.
type SnapshotServiceImpl struct {
	repos  Repositories
	cache  secondary.SnapshotCache
	logger *zap.Logger
	now    func() time.Time
}

// NewSnapshotService creates a new SnapshotService. cache may be nil, in
// which case store failures are returned as is.
func NewSnapshotService(repos Repositories, cache secondary.SnapshotCache, logger *zap.Logger) *SnapshotServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotServiceImpl{
		repos:  repos,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Snapshot loads every collection from the record store, falling back to
// the local cache when the store fails.
func (s *SnapshotServiceImpl) Snapshot(ctx context.Context) (*models.Snapshot, string, error) {
	snap, err := s.load(ctx)
	if err == nil {
		observability.SnapshotLoads.WithLabelValues(primary.SourceStore, "ok").Inc()
		return snap, primary.SourceStore, nil
	}
	observability.SnapshotLoads.WithLabelValues(primary.SourceStore, "error").Inc()

	if s.cache == nil {
		return nil, "", err
	}

	s.logger.Warn("record store unavailable, serving cached snapshot", zap.Error(err))
	cached, cacheErr := s.cache.Load(ctx)
	if cacheErr != nil {
		observability.SnapshotLoads.WithLabelValues(primary.SourceCache, "error").Inc()
		return nil, "", fmt.Errorf("%w (cache: %v)", err, cacheErr)
	}
	observability.SnapshotLoads.WithLabelValues(primary.SourceCache, "ok").Inc()
	cached.Financials.FixedOverheadHourly = metrics.HourlyOverhead(metrics.MonthlyTotal(cached.Financials), cached.Employees)
	return cached, primary.SourceCache, nil
}

func (s *SnapshotServiceImpl) load(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{TakenAt: s.now()}

	employees, err := s.repos.Employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	snap.Employees = derefAll(employees)

	logs, err := s.repos.TaskLogs.List(ctx, secondary.TaskLogFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load task logs: %w", err)
	}
	snap.TaskLogs = derefAll(logs)

	financials, err := s.repos.Financials.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financials: %w", err)
	}
	snap.Financials = *financials
	snap.Financials.FixedOverheadHourly = metrics.HourlyOverhead(metrics.MonthlyTotal(*financials), snap.Employees)

	clients, err := s.repos.Clients.List(ctx, secondary.ClientFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	snap.Clients = derefAll(clients)

	txs, err := s.repos.Transactions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash transactions: %w", err)
	}
	snap.CashboxTransactions = derefAll(txs)

	tickets, err := s.repos.Tickets.List(ctx, secondary.TicketFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to load tickets: %w", err)
	}
	snap.Tickets = derefAll(tickets)

	caseTypes, err := listCaseTypes(ctx, s.repos.CaseTypes)
	if err != nil {
		return nil, err
	}
	snap.CaseTypes = caseTypes

	income, err := s.repos.Income.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load income: %w", err)
	}
	snap.IncomeEntries = derefAll(income)

	return snap, nil
}

// Ensure SnapshotServiceImpl implements the interface
var _ primary.SnapshotService = (*SnapshotServiceImpl)(nil)
