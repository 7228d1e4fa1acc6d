package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/firmos/internal/core/metrics"
	coretasklog "github.com/example/firmos/internal/core/tasklog"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// TaskLogServiceImpl implements the TaskLogService interface.
type TaskLogServiceImpl struct {
	taskLogRepo    secondary.TaskLogRepository
	employeeRepo   secondary.EmployeeRepository
	clientRepo     secondary.ClientRepository
	financialsRepo secondary.FinancialsRepository
	changes        ChangeRecorder
	now            func() time.Time
}

// NewTaskLogService creates a new TaskLogService with injected dependencies.
func NewTaskLogService(
	taskLogRepo secondary.TaskLogRepository,
	employeeRepo secondary.EmployeeRepository,
	clientRepo secondary.ClientRepository,
	financialsRepo secondary.FinancialsRepository,
	changes ChangeRecorder,
) *TaskLogServiceImpl {
	return &TaskLogServiceImpl{
		taskLogRepo:    taskLogRepo,
		employeeRepo:   employeeRepo,
		clientRepo:     clientRepo,
		financialsRepo: financialsRepo,
		changes:        changes,
		now:            time.Now,
	}
}

// LogTask values and stores a task for today. Flat-fee tasks also add
// their hours to the case's running total.
func (s *TaskLogServiceImpl) LogTask(ctx context.Context, req primary.LogTaskRequest) (*primary.LogTaskResponse, error) {
	if req.BillingType == "" {
		req.BillingType = models.TaskBillingBillable
	}

	guardCtx := coretasklog.LogContext{
		EmployeeID:   req.EmployeeID,
		Description:  req.Description,
		Hours:        req.Hours,
		BillingType:  req.BillingType,
		BillableRate: req.BillableRate,
		ClientID:     req.ClientID,
	}

	var employee *models.Employee
	if req.EmployeeID != "" {
		e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("failed to load employee: %w", err)
		}
		employee = e
		guardCtx.EmployeeExists = e != nil
	}

	if req.BillingType == models.TaskBillingFlatFee && req.ClientID != "" {
		c, err := s.clientRepo.GetByID(ctx, req.ClientID)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("failed to load case: %w", err)
		}
		guardCtx.Client = c
	}

	if result := coretasklog.CanLogTask(guardCtx); !result.Allowed {
		return nil, invalid(result.Error())
	}

	hourlyOverhead, err := s.hourlyOverhead(ctx)
	if err != nil {
		return nil, err
	}

	input := metrics.TaskInput{
		Employee:       *employee,
		Hours:          req.Hours,
		BillingType:    req.BillingType,
		BillableRate:   req.BillableRate,
		HourlyOverhead: hourlyOverhead,
	}
	if req.BillingType == models.TaskBillingFlatFee {
		input.Client = guardCtx.Client
	}
	valuation := metrics.ValueTask(input)

	log := &models.TaskLog{
		ID:             uuid.NewString(),
		EmployeeID:     employee.ID,
		Date:           s.now().Format(models.DateLayout),
		Description:    req.Description,
		Hours:          req.Hours,
		LaborCost:      valuation.LaborCost,
		ProductionCost: valuation.ProductionCost,
		Status:         models.TaskLogStatusCompleted,
	}
	if input.Client != nil {
		log.ClientID = input.Client.ID
	}

	if err := s.taskLogRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create task log: %w", err)
	}
	s.changes.created(ctx, CollectionTaskLogs, "task_log", log.ID)

	if input.Client != nil {
		if err := s.clientRepo.AddHoursLogged(ctx, input.Client.ID, req.Hours); err != nil {
			return nil, fmt.Errorf("task logged but failed to update case hours: %w", err)
		}
		s.changes.updated(ctx, CollectionClients, "client", input.Client.ID,
			"hours_logged", formatAmount(input.Client.HoursLogged), formatAmount(input.Client.HoursLogged+req.Hours))
	}

	return &primary.LogTaskResponse{Log: log, Valuation: valuation}, nil
}

// ListTaskLogs retrieves task logs, newest first.
func (s *TaskLogServiceImpl) ListTaskLogs(ctx context.Context, filters primary.TaskLogFilters) ([]*models.TaskLog, error) {
	logs, err := s.taskLogRepo.List(ctx, secondary.TaskLogFilters{
		EmployeeID: filters.EmployeeID,
		ClientID:   filters.ClientID,
		Since:      filters.Since,
		Until:      filters.Until,
		Limit:      filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	return logs, nil
}

// hourlyOverhead derives the current fixed overhead per staff hour.
func (s *TaskLogServiceImpl) hourlyOverhead(ctx context.Context) (float64, error) {
	financials, err := s.financialsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load financials: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return metrics.HourlyOverhead(metrics.MonthlyTotal(*financials), derefAll(employees)), nil
}

// derefAll copies a slice of records into a slice of values.
func derefAll[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// Ensure TaskLogServiceImpl implements the interface
var _ primary.TaskLogService = (*TaskLogServiceImpl)(nil)
