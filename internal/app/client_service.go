package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	coreclient "github.com/example/firmos/internal/core/client"
	"github.com/example/firmos/internal/core/metrics"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
	"github.com/example/firmos/internal/ports/secondary"
)

// ClientServiceImpl implements the ClientService interface.
type ClientServiceImpl struct {
	clientRepo   secondary.ClientRepository
	caseTypeRepo secondary.CaseTypeRepository
	changes      ChangeRecorder
	now          func() time.Time
}

// NewClientService creates a new ClientService with injected dependencies.
func NewClientService(clientRepo secondary.ClientRepository, caseTypeRepo secondary.CaseTypeRepository, changes ChangeRecorder) *ClientServiceImpl {
	return &ClientServiceImpl{
		clientRepo:   clientRepo,
		caseTypeRepo: caseTypeRepo,
		changes:      changes,
		now:          time.Now,
	}
}

// CreateClient applies intake defaults, validates and stores a client.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req primary.CreateClientRequest) (*models.Client, error) {
	caseTypes, err := listCaseTypes(ctx, s.caseTypeRepo)
	if err != nil {
		return nil, err
	}

	client := coreclient.ApplyIntakeDefaults(models.Client{
		ID:             uuid.NewString(),
		Name:           req.Name,
		SponsorName:    req.SponsorName,
		CaseType:       req.CaseType,
		Status:         req.Status,
		RetainerFee:    req.RetainerFee,
		MonthlyFee:     req.MonthlyFee,
		NextPaymentDue: req.NextPaymentDue,
		Notes:          req.Notes,
		BillingType:    req.BillingType,
		FlatFeeAmount:  req.FlatFeeAmount,
		EstimatedHours: req.EstimatedHours,
	}, s.now(), caseTypes)

	if result := coreclient.CanSaveClient(client); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.clientRepo.Create(ctx, &client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.changes.created(ctx, CollectionClients, "client", client.ID)
	return &client, nil
}

// UpdateClient applies a partial update to a client.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, id string, req primary.UpdateClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := client.Status

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.SponsorName != nil {
		client.SponsorName = *req.SponsorName
	}
	if req.CaseType != nil {
		client.CaseType = *req.CaseType
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.RetainerFee != nil {
		client.RetainerFee = *req.RetainerFee
	}
	if req.MonthlyFee != nil {
		client.MonthlyFee = *req.MonthlyFee
	}
	if req.LastCommunication != nil {
		client.LastCommunication = *req.LastCommunication
	}
	if req.NextPaymentDue != nil {
		client.NextPaymentDue = *req.NextPaymentDue
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.BillingType != nil {
		client.BillingType = *req.BillingType
	}
	if req.FlatFeeAmount != nil {
		client.FlatFeeAmount = *req.FlatFeeAmount
	}
	if req.EstimatedHours != nil {
		client.EstimatedHours = *req.EstimatedHours
	}

	if result := coreclient.CanSaveClient(*client); !result.Allowed {
		return nil, invalid(result.Error())
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.changes.updated(ctx, CollectionClients, "client", id, "status", oldStatus, client.Status)
	return client, nil
}

// GetClient retrieves a client by ID.
func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// ListClients retrieves clients with their derived display values.
func (s *ClientServiceImpl) ListClients(ctx context.Context, status string) ([]*primary.ClientView, error) {
	clients, err := s.clientRepo.List(ctx, secondary.ClientFilters{Status: status})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	now := s.now()
	views := make([]*primary.ClientView, len(clients))
	for i, c := range clients {
		view := &primary.ClientView{
			Client:               c,
			CommunicationOverdue: c.Status != models.ClientStatusChurned && metrics.CommunicationOverdue(*c, now),
		}
		if c.BillingType == models.BillingFlatFee {
			view.Progress = metrics.FlatFeeProgress(*c)
			view.ValuePerHour = metrics.FlatFeeValuePerHour(*c)
		}
		views[i] = view
	}
	return views, nil
}

// Ensure ClientServiceImpl implements the interface
var _ primary.ClientService = (*ClientServiceImpl)(nil)
