// Package expense routes free-text expense names to financial line items.
// This is part of the Functional Core - no I/O, only pure functions.
package expense

import (
	"strings"

	"github.com/example/firmos/internal/models"
)

// synonyms is the complete routing table. Keys are case-folded and trimmed.
// Names not listed here become custom expenses.
var synonyms = map[string]models.ExpenseField{
	"lease":           models.FieldMonthlyLease,
	"rent":            models.FieldMonthlyLease,
	"office lease":    models.FieldMonthlyLease,
	"payroll":         models.FieldPayroll,
	"staff":           models.FieldPayroll,
	"labor":           models.FieldPayroll,
	"clio":            models.FieldClio,
	"case management": models.FieldClio,
	"phone":           models.FieldPhone,
	"phones":          models.FieldPhone,
	"wifi":            models.FieldWifi,
	"internet":        models.FieldWifi,
	"frontier":        models.FieldWifi,
	"printer":         models.FieldPrinter,
	"printing":        models.FieldPrinter,
	"kirbo":           models.FieldPrinter,
	"postage":         models.FieldPostage,
	"stamps":          models.FieldPostage,
	"mail":            models.FieldPostage,
	"efile":           models.FieldEfile,
	"filing fees":     models.FieldEfile,
	"supplies":        models.FieldSupplies,
	"office supplies": models.FieldSupplies,
	"chargebacks":     models.FieldChargebacks,
	"lunch":           models.FieldStaffLunch,
	"staff lunch":     models.FieldStaffLunch,
	"meals":           models.FieldStaffLunch,
}

// Route returns the named field an expense should overwrite.
// The second result is false when the name must become a custom expense.
func Route(name string) (models.ExpenseField, bool) {
	field, ok := synonyms[strings.ToLower(strings.TrimSpace(name))]
	return field, ok
}

// Synonyms returns every name routed to the given field.
func Synonyms(field models.ExpenseField) []string {
	var names []string
	for name, f := range synonyms {
		if f == field {
			names = append(names, name)
		}
	}
	return names
}
