package casetype

import (
	"testing"

	"github.com/example/firmos/internal/models"
)

func TestCanSaveCaseType(t *testing.T) {
	tests := []struct {
		name        string
		ct          models.CaseType
		wantAllowed bool
	}{
		{"valid", models.CaseType{Name: "Expunction", EstimatedHours: 12}, true},
		{"zero hours allowed", models.CaseType{Name: "Consult"}, true},
		{"missing name", models.CaseType{EstimatedHours: 12}, false},
		{"negative hours", models.CaseType{Name: "Bad", EstimatedHours: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSaveCaseType(tt.ct).Allowed; got != tt.wantAllowed {
				t.Errorf("CanSaveCaseType() Allowed = %v, want %v", got, tt.wantAllowed)
			}
		})
	}
}

func TestFind(t *testing.T) {
	types := models.DefaultCaseTypes()

	ct, ok := Find(types, "parole")
	if !ok || ct.EstimatedHours != 25 {
		t.Errorf("Find(parole) = %+v, %v", ct, ok)
	}
	ct, ok = Find(types, "civil lawsuit")
	if !ok || ct.ID != "civil" {
		t.Errorf("Find(civil lawsuit) = %+v, %v", ct, ok)
	}
	if _, ok := Find(types, "maritime"); ok {
		t.Error("Find(maritime) should not match")
	}
}
