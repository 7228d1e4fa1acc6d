package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// CashTransactionRepository implements secondary.CashTransactionRepository with SQLite.
type CashTransactionRepository struct {
	db *sql.DB
}

// NewCashTransactionRepository creates a new SQLite cash ledger repository.
func NewCashTransactionRepository(db *sql.DB) *CashTransactionRepository {
	return &CashTransactionRepository{db: db}
}

// Record inserts the ledger entry and moves the cashbox balance in one
// transaction, so the two never disagree after a failure.
func (r *CashTransactionRepository) Record(ctx context.Context, t *models.CashTransaction) (float64, error) {
	var delta float64
	switch t.Type {
	case models.CashIn:
		delta = t.Amount
	case models.CashOut:
		delta = -t.Amount
	default:
		return 0, fmt.Errorf("invalid cash transaction type %q", t.Type)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin cash transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO cash_transactions (id, date, type, payment_method, category, amount, description, sender_or_recipient, performed_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Type, t.PaymentMethod, t.Category, t.Amount, t.Description,
		nullString(t.SenderOrRecipient), nullString(t.PerformedBy),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cash transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE financials SET cashbox_balance = cashbox_balance + ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1",
		delta,
	); err != nil {
		return 0, fmt.Errorf("failed to update cashbox balance: %w", err)
	}

	var balance float64
	if err := tx.QueryRowContext(ctx, "SELECT cashbox_balance FROM financials WHERE id = 1").Scan(&balance); err != nil {
		return 0, fmt.Errorf("failed to read cashbox balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cash transaction: %w", err)
	}
	return balance, nil
}

// List retrieves ledger entries, newest first. Limit 0 means all.
func (r *CashTransactionRepository) List(ctx context.Context, limit int) ([]*models.CashTransaction, error) {
	query := `SELECT id, date, type, payment_method, category, amount, description, sender_or_recipient, performed_by
		FROM cash_transactions ORDER BY date DESC, created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.CashTransaction
	for rows.Next() {
		var counterparty, performedBy sql.NullString
		t := &models.CashTransaction{}
		if err := rows.Scan(&t.ID, &t.Date, &t.Type, &t.PaymentMethod, &t.Category, &t.Amount, &t.Description,
			&counterparty, &performedBy); err != nil {
			return nil, fmt.Errorf("failed to scan cash transaction: %w", err)
		}
		t.SenderOrRecipient = counterparty.String
		t.PerformedBy = performedBy.String
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// Ensure CashTransactionRepository implements the interface
var _ secondary.CashTransactionRepository = (*CashTransactionRepository)(nil)
