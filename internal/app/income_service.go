package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	coreincome "github.com/example/firmos/internal/core/income"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// IncomeServiceImpl implements the IncomeService interface.
type IncomeServiceImpl struct {
	incomeRepo secondary.IncomeRepository
	changes    ChangeRecorder
	now        func() time.Time
}

// NewIncomeService creates a new IncomeService with injected dependencies.
func NewIncomeService(incomeRepo secondary.IncomeRepository, changes ChangeRecorder) *IncomeServiceImpl {
	return &IncomeServiceImpl{
		incomeRepo: incomeRepo,
		changes:    changes,
		now:        time.Now,
	}
}

// RecordIncome validates and stores an income entry.
func (s *IncomeServiceImpl) RecordIncome(ctx context.Context, req primary.RecordIncomeRequest) (*models.IncomeEntry, error) {
	entry := &models.IncomeEntry{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Amount:      req.Amount,
		ClientName:  req.ClientName,
		Description: req.Description,
		Category:    req.Category,
		Method:      req.Method,
		Notes:       req.Notes,
	}
	if entry.Date == "" {
		entry.Date = s.now().Format(models.DateLayout)
	}

	if result := coreincome.CanRecordIncome(*entry); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.incomeRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record income: %w", err)
	}

	s.changes.created(ctx, CollectionIncome, "income", entry.ID)
	return entry, nil
}

// ListIncome retrieves income entries, newest first.
func (s *IncomeServiceImpl) ListIncome(ctx context.Context, limit int) ([]*models.IncomeEntry, error) {
	entries, err := s.incomeRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return entries, nil
}

// Ensure IncomeServiceImpl implements the interface
var _ primary.IncomeService = (*IncomeServiceImpl)(nil)
