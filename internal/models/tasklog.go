package models

// DateLayout is the calendar-day format used for task logs, income entries
// and payment due dates.
const DateLayout = "2006-01-02"

// TaskLog status constants
const (
	TaskLogStatusCompleted  = "completed"
	TaskLogStatusBlocked    = "blocked"
	TaskLogStatusInProgress = "in-progress"
)

// TaskBillingType selects how a logged task is valued.
type TaskBillingType string

const (
	TaskBillingBillable TaskBillingType = "billable"
	TaskBillingFlatFee  TaskBillingType = "flat_fee"
)

// TaskLog is a unit of logged staff work. LaborCost and ProductionCost are
// frozen at logging time and never recomputed.
type TaskLog struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	ClientID       string  `json:"clientId,omitempty"`
	Date           string  `json:"date"` // YYYY-MM-DD
	Description    string  `json:"description"`
	Hours          float64 `json:"hours"`
	LaborCost      float64 `json:"laborCost"`
	ProductionCost float64 `json:"productionCost"`
	Status         string  `json:"status"`
}
