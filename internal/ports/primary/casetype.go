package primary

import (
	"context"

	"github.com/example/firmos/internal/models"
)

// CaseTypeService defines the primary port for intake template operations.
type CaseTypeService interface {
	// ListCaseTypes returns stored templates plus every default not stored.
	ListCaseTypes(ctx context.Context) ([]models.CaseType, error)

	CreateCaseType(ctx context.Context, req CaseTypeRequest) (*models.CaseType, error)
	UpdateCaseType(ctx context.Context, id string, req CaseTypeRequest) (*models.CaseType, error)
	DeleteCaseType(ctx context.Context, id string) error
}

// CaseTypeRequest contains parameters for creating or replacing a template.
type CaseTypeRequest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimatedHours"`
}
