package cashbox

import "github.com/example/firmos/internal/models"

// Apply returns the balance after one transaction: in adds, out subtracts.
// Unknown directions leave the balance unchanged.
func Apply(balance float64, tx models.CashTransaction) float64 {
	switch tx.Type {
	case models.CashIn:
		return balance + tx.Amount
	case models.CashOut:
		return balance - tx.Amount
	}
	return balance
}

// Fold derives a balance from the full ledger. The result does not depend
// on transaction order.
func Fold(txs []models.CashTransaction) float64 {
	var balance float64
	for _, tx := range txs {
		balance = Apply(balance, tx)
	}
	return balance
}

// Totals summarizes money in by payment method and money out.
type Totals struct {
	CashIn  float64 `json:"cashIn"`
	CheckIn float64 `json:"checkIn"`
	Out     float64 `json:"out"`
}

// Summarize totals the ledger by direction and payment method.
func Summarize(txs []models.CashTransaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch {
		case tx.Type == models.CashOut:
			t.Out += tx.Amount
		case tx.Type == models.CashIn && tx.PaymentMethod == models.PaymentCheck:
			t.CheckIn += tx.Amount
		case tx.Type == models.CashIn:
			t.CashIn += tx.Amount
		}
	}
	return t
}
