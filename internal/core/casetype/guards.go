// Package casetype contains the pure business logic for intake templates.
package casetype

import (
	"fmt"
	"strings"

	"github.com/example/firmos/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSaveCaseType requires a name and non-negative estimated hours.
func CanSaveCaseType(ct models.CaseType) GuardResult {
	if strings.TrimSpace(ct.Name) == "" {
		return GuardResult{Allowed: false, Reason: "case type name is required"}
	}
	if ct.EstimatedHours < 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("case type %q cannot have negative estimated hours", ct.Name)}
	}
	return GuardResult{Allowed: true}
}

// Find returns the case type with the given id or name.
func Find(types []models.CaseType, key string) (models.CaseType, bool) {
	for _, ct := range types {
		if ct.ID == key || strings.EqualFold(ct.Name, key) {
			return ct, true
		}
	}
	return models.CaseType{}, false
}
