package models

// CaseType is an intake template used to pre-fill a client's estimated hours.
type CaseType struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// DefaultCaseTypes returns the built-in case templates.
func DefaultCaseTypes() []CaseType {
	return []CaseType{
		{ID: "hc1107", Name: "Habeas Corpus Art. 11.07", EstimatedHours: 75},
		{ID: "sentred", Name: "Sentence Reduction/Time Cut", EstimatedHours: 25},
		{ID: "hc2254", Name: "Habeas Corpus 2254", EstimatedHours: 80},
		{ID: "parole", Name: "Parole Packet", EstimatedHours: 25},
		{ID: "appcrim", Name: "Appeal - Criminal", EstimatedHours: 40},
		{ID: "appciv", Name: "Appeal - Civil", EstimatedHours: 55},
		{ID: "civil", Name: "Civil Lawsuit", EstimatedHours: 105},
		{ID: "tdcj", Name: "TDCJ Complaint", EstimatedHours: 15},
		{ID: "misdpre", Name: "Misdemeanor - Pretrial", EstimatedHours: 20},
		{ID: "felpre", Name: "Felony - PreTrial", EstimatedHours: 50},
	}
}

// MergeDefaultCaseTypes appends every default template whose ID is not stored.
func MergeDefaultCaseTypes(stored []CaseType) []CaseType {
	seen := make(map[string]bool, len(stored))
	for _, ct := range stored {
		seen[ct.ID] = true
	}
	merged := append([]CaseType{}, stored...)
	for _, d := range DefaultCaseTypes() {
		if !seen[d.ID] {
			merged = append(merged, d)
		}
	}
	return merged
}
