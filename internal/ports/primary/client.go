package primary

import (
	"context"
	"time"

	"github.com/example/firmos/internal/models"
)

// ClientService defines the primary port for case file operations.
type ClientService interface {
	// CreateClient applies intake defaults, validates and stores a client.
	CreateClient(ctx context.Context, req CreateClientRequest) (*models.Client, error)

	// UpdateClient applies a partial update to a client.
	UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (*models.Client, error)

	// GetClient retrieves a client by ID.
	GetClient(ctx context.Context, id string) (*models.Client, error)

	// ListClients retrieves clients, optionally filtered by status.
	ListClients(ctx context.Context, status string) ([]*ClientView, error)
}

// CreateClientRequest contains parameters for client intake.
type CreateClientRequest struct {
	Name           string  `json:"name"`
	SponsorName    string  `json:"sponsorName"`
	CaseType       string  `json:"caseType"`
	Status         string  `json:"status"`
	RetainerFee    float64 `json:"retainerFee"`
	MonthlyFee     float64 `json:"monthlyFee"`
	NextPaymentDue string  `json:"nextPaymentDue"`
	Notes          string  `json:"notes"`
	BillingType    string  `json:"billingType"`
	FlatFeeAmount  float64 `json:"flatFeeAmount"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// UpdateClientRequest contains the fields to change. Nil fields are kept.
// HoursLogged is absent: only task logging moves it.
type UpdateClientRequest struct {
	Name              *string    `json:"name"`
	SponsorName       *string    `json:"sponsorName"`
	CaseType          *string    `json:"caseType"`
	Status            *string    `json:"status"`
	RetainerFee       *float64   `json:"retainerFee"`
	MonthlyFee        *float64   `json:"monthlyFee"`
	LastCommunication *time.Time `json:"lastCommunication"`
	NextPaymentDue    *string    `json:"nextPaymentDue"`
	Notes             *string    `json:"notes"`
	BillingType       *string    `json:"billingType"`
	FlatFeeAmount     *float64   `json:"flatFeeAmount"`
	EstimatedHours    *float64   `json:"estimatedHours"`
}

// ClientView is a client with its derived display values.
type ClientView struct {
	*models.Client
	CommunicationOverdue bool    `json:"communicationOverdue"`
	Progress             float64 `json:"progress,omitempty"`
	ValuePerHour         float64 `json:"valuePerHour,omitempty"`
}
