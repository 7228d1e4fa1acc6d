package models

import "time"

// Cash direction constants
const (
	CashIn  = "in"
	CashOut = "out"
)

// Payment method constants
const (
	PaymentCash  = "cash"
	PaymentCheck = "check"
)

// DepositCategories are valid categories for money coming into the cashbox.
var DepositCategories = []string{"Initial", "Client Payment", "Other"}

// WithdrawalCategories are valid categories for money leaving the cashbox.
var WithdrawalCategories = []string{
	"Supplies", "Stamps", "CNB Bank", "Bonus Pay", "Borrow", "Barter", "Lunch/Snacks", "Office Repairs", "Other",
}

// CashTransaction is an append-only cashbox ledger entry.
type CashTransaction struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	Type              string    `json:"type"`
	PaymentMethod     string    `json:"paymentMethod"`
	Category          string    `json:"category"`
	Amount            float64   `json:"amount"`
	Description       string    `json:"description"`
	SenderOrRecipient string    `json:"senderOrRecipient"`
	PerformedBy       string    `json:"performedBy"`
}
