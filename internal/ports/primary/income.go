package primary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// IncomeService defines the primary port for income entries.
type IncomeService interface {
	RecordIncome(ctx context.Context, req RecordIncomeRequest) (*models.IncomeEntry, error)
	ListIncome(ctx context.Context, limit int) ([]*models.IncomeEntry, error)
}

// RecordIncomeRequest contains parameters for an income entry.
// An empty Date means today.
type RecordIncomeRequest struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	ClientName  string  `json:"clientName"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Method      string  `json:"method"`
	Notes       string  `json:"notes"`
}
