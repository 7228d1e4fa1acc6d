package app

import (
	"context"
	"testing"

	"github.com/example/firmos/internal/ports/primary"
)

func TestIncomeService_RecordDefaultsDate(t *testing.T) {
	repo := &mockIncomeRepository{}
	service := NewIncomeService(repo, ChangeRecorder{})
	service.now = fixedClock

	entry, err := service.RecordIncome(context.Background(), primary.RecordIncomeRequest{
		Amount: 1500, ClientName: "R. Alvarez", Category: "Retainer", Method: "Zelle",
	})
	if err != nil {
		t.Fatalf("RecordIncome failed: %v", err)
	}
	if entry.Date != "2026-10-14" {
		t.Errorf("Date = %q, want 2026-10-14", entry.Date)
	}
	if entry.ID == "" || len(repo.entries) != 1 {
		t.Errorf("entry not stored: %+v", entry)
	}
}

func TestIncomeService_RecordRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  primary.RecordIncomeRequest
	}{
		{"missing client name", primary.RecordIncomeRequest{Amount: 500, Category: "Retainer", Method: "Cash"}},
		{"zero amount", primary.RecordIncomeRequest{ClientName: "Kim", Category: "Retainer", Method: "Cash"}},
		{"unknown category", primary.RecordIncomeRequest{ClientName: "Kim", Amount: 10, Category: "Gift", Method: "Cash"}},
		{"unknown method", primary.RecordIncomeRequest{ClientName: "Kim", Amount: 10, Category: "Other", Method: "Bitcoin"}},
		{"bad date", primary.RecordIncomeRequest{ClientName: "Kim", Date: "14/10/2026", Amount: 10, Category: "Other", Method: "Cash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockIncomeRepository{}
			service := NewIncomeService(repo, ChangeRecorder{})

			if _, err := service.RecordIncome(context.Background(), tt.req); !IsValidation(err) {
				t.Errorf("error = %v, want ValidationError", err)
			}
			if len(repo.entries) != 0 {
				t.Error("invalid entry was stored")
			}
		})
	}
}

func TestIncomeService_ListIncomeLimit(t *testing.T) {
	repo := &mockIncomeRepository{}
	service := NewIncomeService(repo, ChangeRecorder{})
	for _, amount := range []float64{100, 200, 300} {
		if _, err := service.RecordIncome(context.Background(), primary.RecordIncomeRequest{
			Date: "2026-10-14", Amount: amount, ClientName: "Kim", Category: "Other", Method: "Cash",
		}); err != nil {
			t.Fatalf("RecordIncome failed: %v", err)
		}
	}

	entries, err := service.ListIncome(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListIncome failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Amount != 300 {
		t.Errorf("entries = %d, first %v; want 2 newest first", len(entries), entries[0].Amount)
	}
}
