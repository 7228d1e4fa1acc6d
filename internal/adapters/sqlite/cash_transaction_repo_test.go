package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/example/firmos/internal/adapters/sqlite"
	"github.com/example/firmos/internal/models"
)

func TestCashTransactionRepository_RecordMovesBalance(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCashTransactionRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	balance, err := repo.Record(ctx, &models.CashTransaction{
		ID: "t1", Date: now, Type: models.CashIn, PaymentMethod: models.PaymentCash,
		Category: "Initial", Amount: 100, Description: "Float",
	})
	if err != nil {
		t.Fatalf("Record(in) failed: %v", err)
	}
	if balance != 100 {
		t.Errorf("balance = %v, want 100", balance)
	}

	balance, err = repo.Record(ctx, &models.CashTransaction{
		ID: "t2", Date: now.Add(time.Hour), Type: models.CashOut, PaymentMethod: models.PaymentCash,
		Category: "Stamps", Amount: 40, Description: "Stamps", PerformedBy: "Ana",
	})
	if err != nil {
		t.Fatalf("Record(out) failed: %v", err)
	}
	if balance != 60 {
		t.Errorf("balance = %v, want 60", balance)
	}

	txs, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(txs) != 2 || txs[0].ID != "t2" || txs[0].PerformedBy != "Ana" {
		t.Errorf("List() = %+v", txs)
	}
	if !txs[1].Date.Equal(now) {
		t.Errorf("Date = %v, want %v", txs[1].Date, now)
	}
}

func TestCashTransactionRepository_FailedInsertLeavesBalance(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCashTransactionRepository(db)
	ctx := context.Background()
	now := time.Now()

	tx := &models.CashTransaction{
		ID: "dup", Date: now, Type: models.CashIn, PaymentMethod: models.PaymentCash,
		Category: "Initial", Amount: 50, Description: "Float",
	}
	if _, err := repo.Record(ctx, tx); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if _, err := repo.Record(ctx, tx); err == nil {
		t.Fatal("Record(duplicate id) succeeded, want error")
	}

	var balance float64
	if err := db.QueryRow("SELECT cashbox_balance FROM financials WHERE id = 1").Scan(&balance); err != nil {
		t.Fatalf("read balance: %v", err)
	}
	if balance != 50 {
		t.Errorf("balance = %v, want 50 (rolled back)", balance)
	}
}
