package models

// IncomeCategories are the accepted income entry categories.
var IncomeCategories = []string{"Retainer", "Monthly Fee", "Flat Fee", "Consultation", "Other"}

// IncomeMethods are the accepted income payment methods.
var IncomeMethods = []string{"Cash", "Check", "Credit Card", "Zelle", "Wire"}

// IncomeEntry is a received payment used for weekly P&L reporting.
// It is independent of the cashbox ledger.
type IncomeEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"` // YYYY-MM-DD or RFC3339
	Amount      float64 `json:"amount"`
	ClientName  string  `json:"clientName"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes,omitempty"`
}
