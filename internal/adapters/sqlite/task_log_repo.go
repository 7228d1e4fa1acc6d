package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// TaskLogRepository implements secondary.TaskLogRepository with SQLite.
type TaskLogRepository struct {
	db *sql.DB
}

// NewTaskLogRepository creates a new SQLite task log repository.
func NewTaskLogRepository(db *sql.DB) *TaskLogRepository {
	return &TaskLogRepository{db: db}
}

// Create persists a new task log.
func (r *TaskLogRepository) Create(ctx context.Context, l *models.TaskLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_logs (id, employee_id, client_id, date, description, hours, labor_cost, production_cost, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.EmployeeID, nullString(l.ClientID), l.Date, l.Description, l.Hours, l.LaborCost, l.ProductionCost, l.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create task log: %w", err)
	}
	return nil
}

// List retrieves task logs matching the given filters, newest first.
func (r *TaskLogRepository) List(ctx context.Context, filters secondary.TaskLogFilters) ([]*models.TaskLog, error) {
	query := `SELECT id, employee_id, client_id, date, description, hours, labor_cost, production_cost, status FROM task_logs WHERE 1=1`
	args := []any{}

	if filters.EmployeeID != "" {
		query += " AND employee_id = ?"
		args = append(args, filters.EmployeeID)
	}
	if filters.ClientID != "" {
		query += " AND client_id = ?"
		args = append(args, filters.ClientID)
	}
	if filters.Since != "" {
		query += " AND date >= ?"
		args = append(args, filters.Since)
	}
	if filters.Until != "" {
		query += " AND date <= ?"
		args = append(args, filters.Until)
	}

	query += " ORDER BY date DESC, created_at DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.TaskLog
	for rows.Next() {
		var clientID sql.NullString
		l := &models.TaskLog{}
		if err := rows.Scan(&l.ID, &l.EmployeeID, &clientID, &l.Date, &l.Description, &l.Hours, &l.LaborCost, &l.ProductionCost, &l.Status); err != nil {
			return nil, fmt.Errorf("failed to scan task log: %w", err)
		}
		l.ClientID = clientID.String
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Ensure TaskLogRepository implements the interface
var _ secondary.TaskLogRepository = (*TaskLogRepository)(nil)
