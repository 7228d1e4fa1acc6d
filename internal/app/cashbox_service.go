package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	corecashbox "github.com/example/firmos/internal/core/cashbox"
	"github.com/example/firmos/internal/ctxutil"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// CashboxServiceImpl implements the CashboxService interface.
type CashboxServiceImpl struct {
	cashRepo       secondary.CashTransactionRepository
	financialsRepo secondary.FinancialsRepository
	changes        ChangeRecorder
	now            func() time.Time
}

// NewCashboxService creates a new CashboxService with injected dependencies.
func NewCashboxService(cashRepo secondary.CashTransactionRepository, financialsRepo secondary.FinancialsRepository, changes ChangeRecorder) *CashboxServiceImpl {
	return &CashboxServiceImpl{
		cashRepo:       cashRepo,
		financialsRepo: financialsRepo,
		changes:        changes,
		now:            time.Now,
	}
}

// RecordTransaction validates a ledger entry and applies it to the balance
// atomically.
func (s *CashboxServiceImpl) RecordTransaction(ctx context.Context, req primary.RecordTransactionRequest) (*primary.RecordTransactionResponse, error) {
	tx := &models.CashTransaction{
		ID:                uuid.NewString(),
		Date:              req.Date,
		Type:              req.Type,
		PaymentMethod:     req.PaymentMethod,
		Category:          req.Category,
		Amount:            req.Amount,
		Description:       req.Description,
		SenderOrRecipient: req.SenderOrRecipient,
		PerformedBy:       req.PerformedBy,
	}
	if tx.Date.IsZero() {
		tx.Date = s.now()
	}
	if tx.PerformedBy == "" {
		tx.PerformedBy = ctxutil.ActorFromContext(ctx)
	}

	if result := corecashbox.CanRecordTransaction(*tx); !result.Allowed {
		return nil, invalid(result.Error())
	}

	balance, err := s.cashRepo.Record(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to record cash transaction: %w", err)
	}

	s.changes.created(ctx, CollectionCashbox, "cash_transaction", tx.ID)
	s.changes.updated(ctx, CollectionFinancials, "financials", "financials",
		"cashbox_balance", formatAmount(corecashbox.Apply(balance, reverse(*tx))), formatAmount(balance))

	return &primary.RecordTransactionResponse{Transaction: tx, Balance: balance}, nil
}

// GetCashbox returns the balance, the ledger and its totals.
func (s *CashboxServiceImpl) GetCashbox(ctx context.Context) (*primary.CashboxSummary, error) {
	financials, err := s.financialsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load financials: %w", err)
	}
	txs, err := s.cashRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash transactions: %w", err)
	}

	ledger := derefAll(txs)
	folded := corecashbox.Fold(ledger)
	return &primary.CashboxSummary{
		Balance:       financials.CashboxBalance,
		LedgerBalance: folded,
		Drift:         financials.CashboxBalance - folded,
		Totals:        corecashbox.Summarize(ledger),
		Transactions:  txs,
	}, nil
}

// reverse returns the entry that undoes tx.
func reverse(tx models.CashTransaction) models.CashTransaction {
	if tx.Type == models.CashIn {
		tx.Type = models.CashOut
	} else {
		tx.Type = models.CashIn
	}
	return tx
}

// Ensure CashboxServiceImpl implements the interface
var _ primary.CashboxService = (*CashboxServiceImpl)(nil)
