package app

import (
	"time"

	"github.com/example/firmos/internal/models"
)

// testNow is a Wednesday, the first day of a fiscal week.
var testNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.Local)

func fixedClock() time.Time { return testNow }

var (
	testParalegal = models.Employee{ID: "e1", Name: "Ana", Role: "Paralegal", HourlyCost: 20, DailyHours: 8}
	testFlatCase  = models.Client{
		ID:             "c1",
		Name:           "R. Alvarez",
		SponsorName:    "M. Alvarez",
		CaseType:       "Parole Packet",
		Status:         models.ClientStatusActive,
		BillingType:    models.BillingFlatFee,
		FlatFeeAmount:  5000,
		EstimatedHours: 50,
		HoursLogged:    30,
	}
)
