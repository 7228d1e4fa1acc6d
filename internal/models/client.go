package models

import "time"

// Client status constants
const (
	ClientStatusActive  = "active"
	ClientStatusRisk    = "risk"
	ClientStatusChurned = "churned"
)

// Client billing type constants
const (
	BillingHourly  = "hourly"
	BillingFlatFee = "flat_fee"
)

// Client is a case file. Name is the represented party; SponsorName is the payer.
type Client struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SponsorName       string    `json:"sponsorName"`
	CaseType          string    `json:"caseType"`
	Status            string    `json:"status"`
	RetainerFee       float64   `json:"retainerFee"`
	MonthlyFee        float64   `json:"monthlyFee"`
	LastCommunication time.Time `json:"lastCommunication"`
	NextPaymentDue    string    `json:"nextPaymentDue"` // YYYY-MM-DD
	Notes             string    `json:"notes,omitempty"`
	BillingType       string    `json:"billingType"`
	FlatFeeAmount     float64   `json:"flatFeeAmount"`
	EstimatedHours    float64   `json:"estimatedHours"`
	HoursLogged       float64   `json:"hoursLogged"`
}

// IsActiveFlatFee reports whether work can be logged against this case.
func (c Client) IsActiveFlatFee() bool {
	return c.BillingType == BillingFlatFee && c.Status == ClientStatusActive
}
