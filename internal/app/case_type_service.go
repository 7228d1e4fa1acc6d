package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	corecasetype "github.com/example/firmos/internal/core/casetype"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// CaseTypeServiceImpl implements the CaseTypeService interface.
type CaseTypeServiceImpl struct {
	caseTypeRepo secondary.CaseTypeRepository
	changes      ChangeRecorder
}

// NewCaseTypeService creates a new CaseTypeService with injected dependencies.
func NewCaseTypeService(caseTypeRepo secondary.CaseTypeRepository, changes ChangeRecorder) *CaseTypeServiceImpl {
	return &CaseTypeServiceImpl{
		caseTypeRepo: caseTypeRepo,
		changes:      changes,
	}
}

// ListCaseTypes returns stored templates plus every default not stored.
func (s *CaseTypeServiceImpl) ListCaseTypes(ctx context.Context) ([]models.CaseType, error) {
	return listCaseTypes(ctx, s.caseTypeRepo)
}

// CreateCaseType stores a new template. A caller-supplied ID that matches a
// default overrides that default.
func (s *CaseTypeServiceImpl) CreateCaseType(ctx context.Context, req primary.CaseTypeRequest) (*models.CaseType, error) {
	ct := models.CaseType{
		ID:             strings.TrimSpace(req.ID),
		Name:           req.Name,
		EstimatedHours: req.EstimatedHours,
	}
	if ct.ID == "" {
		ct.ID = uuid.NewString()
	}

	if result := corecasetype.CanSaveCaseType(ct); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.caseTypeRepo.Create(ctx, &ct); err != nil {
		return nil, fmt.Errorf("failed to create case type: %w", err)
	}

	s.changes.created(ctx, CollectionCaseTypes, "case_type", ct.ID)
	return &ct, nil
}

// UpdateCaseType replaces a template. Updating a default that was never
// stored stores an override.
func (s *CaseTypeServiceImpl) UpdateCaseType(ctx context.Context, id string, req primary.CaseTypeRequest) (*models.CaseType, error) {
	ct := models.CaseType{ID: id, Name: req.Name, EstimatedHours: req.EstimatedHours}
	if result := corecasetype.CanSaveCaseType(ct); !result.Allowed {
		return nil, invalid(result.Error())
	}

	_, err := s.caseTypeRepo.GetByID(ctx, id)
	switch {
	case err == nil:
		if err := s.caseTypeRepo.Update(ctx, &ct); err != nil {
			return nil, fmt.Errorf("failed to update case type: %w", err)
		}
	case errors.Is(err, models.ErrNotFound):
		if _, isDefault := corecasetype.Find(models.DefaultCaseTypes(), id); !isDefault {
			return nil, err
		}
		if err := s.caseTypeRepo.Create(ctx, &ct); err != nil {
			return nil, fmt.Errorf("failed to override default case type: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load case type: %w", err)
	}

	s.changes.updated(ctx, CollectionCaseTypes, "case_type", id, "estimated_hours", "", formatAmount(ct.EstimatedHours))
	return &ct, nil
}

// DeleteCaseType removes a stored template. A deleted override falls back
// to its default.
func (s *CaseTypeServiceImpl) DeleteCaseType(ctx context.Context, id string) error {
	if err := s.caseTypeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.changes.deleted(ctx, CollectionCaseTypes, "case_type", id)
	return nil
}

// listCaseTypes merges stored templates with the defaults.
func listCaseTypes(ctx context.Context, repo secondary.CaseTypeRepository) ([]models.CaseType, error) {
	stored, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list case types: %w", err)
	}
	return models.MergeDefaultCaseTypes(derefAll(stored)), nil
}

// Ensure CaseTypeServiceImpl implements the interface
var _ primary.CaseTypeService = (*CaseTypeServiceImpl)(nil)
