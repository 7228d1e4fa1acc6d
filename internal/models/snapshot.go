package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Snapshot is the full set of firm records at one point in time.
// It is the unit the metrics engine derives from and the unit the
// local cache persists.
type Snapshot struct {
	Employees           []Employee        `json:"employees"`
	TaskLogs            []TaskLog         `json:"taskLogs"`
	Financials          Financials        `json:"financials"`
	Clients             []Client          `json:"clients"`
	CashboxTransactions []CashTransaction `json:"cashboxTransactions"`
	Tickets             []SupportTicket   `json:"tickets"`
	CaseTypes           []CaseType        `json:"caseTypes"`
	IncomeEntries       []IncomeEntry     `json:"incomeEntries"`
	TakenAt             time.Time         `json:"takenAt"`
}
