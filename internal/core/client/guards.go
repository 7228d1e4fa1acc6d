// Package client contains the pure business logic for case files.
// This is part of the Functional Core - no I/O, only pure functions.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/firmos/internal/models"
)

// DefaultCaseTypeName labels clients intaken without a case type.
const DefaultCaseTypeName = "General"

// PaymentTermDays is the gap between intake and the first payment due.
const PaymentTermDays = 30

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSaveClient evaluates whether a client record is complete.
// Rules:
//   - name and sponsor name are required
//   - status and billing type must be known
//   - flat-fee cases need a positive fee and positive estimated hours
func CanSaveClient(c models.Client) GuardResult {
	if strings.TrimSpace(c.Name) == "" {
		return GuardResult{Allowed: false, Reason: "client name is required"}
	}
	if strings.TrimSpace(c.SponsorName) == "" {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("sponsor name is required for client %q", c.Name)}
	}
	switch c.Status {
	case models.ClientStatusActive, models.ClientStatusRisk, models.ClientStatusChurned:
	default:
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid client status %q", c.Status)}
	}
	switch c.BillingType {
	case models.BillingHourly:
	case models.BillingFlatFee:
		if c.FlatFeeAmount <= 0 || c.EstimatedHours <= 0 {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("flat fee client %q needs a flat fee amount and estimated hours", c.Name),
			}
		}
	default:
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid billing type %q", c.BillingType)}
	}
	if c.RetainerFee < 0 || c.MonthlyFee < 0 || c.FlatFeeAmount < 0 || c.EstimatedHours < 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("client %q has a negative fee or hour value", c.Name)}
	}
	return GuardResult{Allowed: true}
}

// ApplyIntakeDefaults fills intake defaults and pre-fills estimated hours
// from the matching case type template when none were given.
func ApplyIntakeDefaults(c models.Client, now time.Time, caseTypes []models.CaseType) models.Client {
	if c.Status == "" {
		c.Status = models.ClientStatusActive
	}
	if c.BillingType == "" {
		c.BillingType = models.BillingHourly
	}
	if strings.TrimSpace(c.CaseType) == "" {
		c.CaseType = DefaultCaseTypeName
	}
	if c.EstimatedHours <= 0 {
		for _, ct := range caseTypes {
			if ct.ID == c.CaseType || strings.EqualFold(ct.Name, c.CaseType) {
				c.EstimatedHours = ct.EstimatedHours
				break
			}
		}
	}
	if c.LastCommunication.IsZero() {
		c.LastCommunication = now
	}
	if c.NextPaymentDue == "" {
		c.NextPaymentDue = now.AddDate(0, 0, PaymentTermDays).Format(models.DateLayout)
	}
	c.HoursLogged = 0
	return c
}
