package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/primary"
)

func newTestClientService(clients ...models.Client) (*ClientServiceImpl, *mockClientRepository, *mockCaseTypeRepository) {
	repo := newMockClientRepository(clients...)
	caseTypes := newMockCaseTypeRepository()
	service := NewClientService(repo, caseTypes, NewChangeRecorder(nil, nil, nil))
	service.now = fixedClock
	return service, repo, caseTypes
}

func TestClientService_CreateAppliesIntakeDefaults(t *testing.T) {
	service, _, _ := newTestClientService()

	c, err := service.CreateClient(context.Background(), primary.CreateClientRequest{
		Name:          "R. Alvarez",
		SponsorName:   "M. Alvarez",
		CaseType:      "Parole Packet",
		BillingType:   models.BillingFlatFee,
		FlatFeeAmount: 2500,
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	if c.Status != models.ClientStatusActive {
		t.Errorf("Status = %q, want active", c.Status)
	}
	if c.EstimatedHours != 25 {
		t.Errorf("EstimatedHours = %v, want 25 from the Parole Packet template", c.EstimatedHours)
	}
	if !c.LastCommunication.Equal(testNow) {
		t.Errorf("LastCommunication = %v, want %v", c.LastCommunication, testNow)
	}
	if c.NextPaymentDue != "2026-11-13" {
		t.Errorf("NextPaymentDue = %q, want 2026-11-13", c.NextPaymentDue)
	}
}

func TestClientService_CreateUsesStoredCaseTypeOverride(t *testing.T) {
	service, _, caseTypes := newTestClientService()
	caseTypes.caseTypes["parole"] = &models.CaseType{ID: "parole", Name: "Parole Packet", EstimatedHours: 30}

	c, err := service.CreateClient(context.Background(), primary.CreateClientRequest{
		Name: "R", SponsorName: "S", CaseType: "parole", BillingType: models.BillingFlatFee, FlatFeeAmount: 1000,
	})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	if c.EstimatedHours != 30 {
		t.Errorf("EstimatedHours = %v, want 30", c.EstimatedHours)
	}
}

func TestClientService_CreateRejectsMissingSponsor(t *testing.T) {
	service, repo, _ := newTestClientService()

	_, err := service.CreateClient(context.Background(), primary.CreateClientRequest{Name: "R"})
	if !IsValidation(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(repo.clients) != 0 {
		t.Error("invalid client stored")
	}
}

func TestClientService_UpdateKeepsHoursLogged(t *testing.T) {
	service, repo, _ := newTestClientService(testFlatCase)

	status := models.ClientStatusRisk
	updated, err := service.UpdateClient(context.Background(), "c1", primary.UpdateClientRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}
	if updated.Status != models.ClientStatusRisk {
		t.Errorf("Status = %q, want risk", updated.Status)
	}
	if repo.clients["c1"].HoursLogged != testFlatCase.HoursLogged {
		t.Errorf("HoursLogged changed to %v", repo.clients["c1"].HoursLogged)
	}
}

func TestClientService_ListClientsDerivesDisplayValues(t *testing.T) {
	overdue := testFlatCase
	overdue.LastCommunication = testNow.Add(-15 * 24 * time.Hour)

	recent := models.Client{
		ID: "c2", Name: "B", SponsorName: "S", Status: models.ClientStatusActive,
		BillingType: models.BillingHourly, LastCommunication: testNow.Add(-24 * time.Hour),
	}
	service, _, _ := newTestClientService(overdue, recent)

	views, err := service.ListClients(context.Background(), "")
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}

	byID := map[string]*primary.ClientView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	if v := byID["c1"]; !v.CommunicationOverdue || v.Progress != 60 || v.ValuePerHour != 100 {
		t.Errorf("flat fee view = overdue %v, progress %v, value/h %v; want true, 60, 100", v.CommunicationOverdue, v.Progress, v.ValuePerHour)
	}
	if v := byID["c2"]; v.CommunicationOverdue || v.Progress != 0 {
		t.Errorf("hourly view = %+v", v)
	}
}
