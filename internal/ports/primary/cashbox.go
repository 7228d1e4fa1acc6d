package primary

import (
	"context"
	"time"

	"github.com/example/firmos/internal/core/cashbox"
	"github.com/example/firmos/internal/models"
)

// CashboxService defines the primary port for the cashbox ledger.
type CashboxService interface {
	// RecordTransaction validates a ledger entry and applies it to the
	// balance atomically.
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (*RecordTransactionResponse, error)

	// GetCashbox returns the balance, the ledger and its totals.
	GetCashbox(ctx context.Context) (*CashboxSummary, error)
}

// RecordTransactionRequest contains parameters for a ledger entry.
// A zero Date means now; an empty PerformedBy falls back to the actor.
type RecordTransactionRequest struct {
	Date              time.Time `json:"date"`
	Type              string    `json:"type"`
	PaymentMethod     string    `json:"paymentMethod"`
	Category          string    `json:"category"`
	Amount            float64   `json:"amount"`
	Description       string    `json:"description"`
	SenderOrRecipient string    `json:"senderOrRecipient"`
	PerformedBy       string    `json:"performedBy"`
}

// RecordTransactionResponse contains the stored entry and the new balance.
type RecordTransactionResponse struct {
	Transaction *models.CashTransaction `json:"transaction"`
	Balance     float64                 `json:"balance"`
}

// CashboxSummary is the cashbox as shown to staff. Drift is the stored
// balance minus the balance folded from the ledger.
type CashboxSummary struct {
	Balance       float64                   `json:"balance"`
	LedgerBalance float64                   `json:"ledgerBalance"`
	Drift         float64                   `json:"drift"`
	Totals        cashbox.Totals            `json:"totals"`
	Transactions  []*models.CashTransaction `json:"transactions"`
}
