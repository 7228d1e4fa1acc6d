// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// EmployeeRepository defines the secondary port for staff persistence.
type EmployeeRepository interface {
	// Create persists a new employee.
	Create(ctx context.Context, employee *models.Employee) error

	// GetByID retrieves an employee by its ID.
	// Returns models.ErrNotFound when no such employee exists.
	GetByID(ctx context.Context, id string) (*models.Employee, error)

	// Update overwrites an existing employee.
	Update(ctx context.Context, employee *models.Employee) error

	// List retrieves all employees ordered by name.
	List(ctx context.Context) ([]*models.Employee, error)
}

// TaskLogRepository defines the secondary port for task log persistence.
// Task logs are append-only.
type TaskLogRepository interface {
	// Create persists a new task log.
	Create(ctx context.Context, log *models.TaskLog) error

	// List retrieves task logs matching the given filters, newest first.
	List(ctx context.Context, filters TaskLogFilters) ([]*models.TaskLog, error)
}

// TaskLogFilters contains filter options for querying task logs.
// Since and Until are inclusive YYYY-MM-DD bounds.
type TaskLogFilters struct {
	EmployeeID string
	ClientID   string
	Since      string
	Until      string
	Limit      int
}

// ClientRepository defines the secondary port for case file persistence.
type ClientRepository interface {
	// Create persists a new client.
	Create(ctx context.Context, client *models.Client) error

	// GetByID retrieves a client by its ID.
	GetByID(ctx context.Context, id string) (*models.Client, error)

	// Update overwrites an existing client.
	Update(ctx context.Context, client *models.Client) error

	// List retrieves clients matching the given filters.
	List(ctx context.Context, filters ClientFilters) ([]*models.Client, error)

	// AddHoursLogged increments a client's hours logged. It never decreases
	// or caps the running total.
	AddHoursLogged(ctx context.Context, id string, hours float64) error
}

// ClientFilters contains filter options for querying clients.
type ClientFilters struct {
	Status      string
	BillingType string
}

// CaseTypeRepository defines the secondary port for intake template persistence.
type CaseTypeRepository interface {
	Create(ctx context.Context, caseType *models.CaseType) error
	GetByID(ctx context.Context, id string) (*models.CaseType, error)
	Update(ctx context.Context, caseType *models.CaseType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.CaseType, error)
}

// FinancialsRepository defines the secondary port for the singleton
// settings/financials record and its custom expenses.
type FinancialsRepository interface {
	// Get retrieves the financials record with its custom expenses.
	// FixedOverheadHourly is left at zero; it is never stored.
	Get(ctx context.Context) (*models.Financials, error)

	// Update overwrites every named field of the record. Custom expenses are
	// managed separately.
	Update(ctx context.Context, financials *models.Financials) error

	// SetExpenseField overwrites one named monthly line item.
	SetExpenseField(ctx context.Context, field models.ExpenseField, amount float64) error

	// AddCustomExpense appends a custom expense row.
	AddCustomExpense(ctx context.Context, expense *models.CustomExpense) error

	// DeleteCustomExpense removes a custom expense row.
	DeleteCustomExpense(ctx context.Context, id string) error
}

// CashTransactionRepository defines the secondary port for the cashbox ledger.
type CashTransactionRepository interface {
	// Record inserts the ledger entry and applies it to the stored cashbox
	// balance in one transaction. Returns the new balance.
	Record(ctx context.Context, tx *models.CashTransaction) (float64, error)

	// List retrieves ledger entries, newest first. Limit 0 means all.
	List(ctx context.Context, limit int) ([]*models.CashTransaction, error)
}

// IncomeRepository defines the secondary port for income entries.
// Income entries are append-only.
type IncomeRepository interface {
	Create(ctx context.Context, entry *models.IncomeEntry) error
	List(ctx context.Context, limit int) ([]*models.IncomeEntry, error)
}

// TicketRepository defines the secondary port for support ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetByID(ctx context.Context, id string) (*models.SupportTicket, error)
	Update(ctx context.Context, ticket *models.SupportTicket) error
	List(ctx context.Context, filters TicketFilters) ([]*models.SupportTicket, error)

	// TicketNumbers returns every stored ticket number.
	TicketNumbers(ctx context.Context) ([]string, error)
}

// TicketFilters contains filter options for querying tickets.
type TicketFilters struct {
	Status   string
	Priority string
}
