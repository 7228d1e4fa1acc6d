package primary

import (
	"context"

	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
)

// TaskLogService defines the primary port for logging staff work.
type TaskLogService interface {
	// LogTask values and stores a task for today. Flat-fee tasks also add
	// their hours to the case's running total.
	LogTask(ctx context.Context, req LogTaskRequest) (*LogTaskResponse, error)

	// ListTaskLogs retrieves task logs, newest first.
	ListTaskLogs(ctx context.Context, filters TaskLogFilters) ([]*models.TaskLog, error)
}

// LogTaskRequest contains parameters for logging a task.
type LogTaskRequest struct {
	EmployeeID   string                 `json:"employeeId"`
	Description  string                 `json:"description"`
	Hours        float64                `json:"hours"`
	BillingType  models.TaskBillingType `json:"billingType"`
	BillableRate float64                `json:"billableRate"`
	ClientID     string                 `json:"clientId"`
}

// LogTaskResponse contains the stored log and its valuation breakdown.
type LogTaskResponse struct {
	Log       *models.TaskLog       `json:"log"`
	Valuation metrics.TaskValuation `json:"valuation"`
}

// TaskLogFilters contains filter options for listing task logs.
type TaskLogFilters struct {
	EmployeeID string
	ClientID   string
	Since      string
	Until      string
	Limit      int
}
