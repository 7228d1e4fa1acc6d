package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/firmos/internal/adapters/sqlite"
	"github.com/example/firmos/internal/models"
)

func TestCaseTypeRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewCaseTypeRepository(db)
	ctx := context.Background()

	ct := &models.CaseType{ID: "expunge", Name: "Expunction", EstimatedHours: 12}
	if err := repo.Create(ctx, ct); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ct.EstimatedHours = 14
	if err := repo.Update(ctx, ct); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := repo.GetByID(ctx, "expunge")
	if err != nil || got.EstimatedHours != 14 {
		t.Fatalf("GetByID() = %+v, %v", got, err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 1 {
		t.Errorf("List() = %d, want 1", len(list))
	}

	if err := repo.Delete(ctx, "expunge"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, "expunge"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("GetByID after delete error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "expunge"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}
