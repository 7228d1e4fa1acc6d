package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/ports/secondary"
)

// expenseColumns maps each monthly line item to its column in financials.
var expenseColumns = map[models.ExpenseField]string{
	models.FieldMonthlyLease:         "monthly_lease",
	models.FieldPayroll:              "payroll",
	models.FieldClio:                 "clio",
	models.FieldPhone:                "phone",
	models.FieldWifi:                 "wifi",
	models.FieldPrinter:              "printer",
	models.FieldPostage:              "postage",
	models.FieldEfile:                "efile",
	models.FieldSupplies:             "supplies",
	models.FieldChargebacks:          "chargebacks",
	models.FieldStaffLunch:           "staff_lunch",
	models.FieldOtherMonthlyExpenses: "other_monthly_expenses",
}

// FinancialsRepository implements secondary.FinancialsRepository with SQLite.
type FinancialsRepository struct {
	db *sql.DB
}

// NewFinancialsRepository creates a new SQLite financials repository.
func NewFinancialsRepository(db *sql.DB) *FinancialsRepository {
	return &FinancialsRepository{db: db}
}

// Get retrieves the singleton financials record with its custom expenses.
func (r *FinancialsRepository) Get(ctx context.Context) (*models.Financials, error) {
	f := &models.Financials{}
	err := r.db.QueryRowContext(ctx,
		`SELECT monthly_lease, payroll, clio, phone, wifi, printer, postage, efile, supplies, chargebacks,
			staff_lunch, other_monthly_expenses, cash_on_hand, debt, cashbox_balance
		FROM financials WHERE id = 1`,
	).Scan(&f.MonthlyLease, &f.Payroll, &f.Clio, &f.Phone, &f.Wifi, &f.Printer, &f.Postage, &f.Efile, &f.Supplies,
		&f.Chargebacks, &f.StaffLunch, &f.OtherMonthlyExpenses, &f.CashOnHand, &f.Debt, &f.CashboxBalance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("financials: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get financials: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, "SELECT id, name, amount FROM custom_expenses ORDER BY created_at, name")
	if err != nil {
		return nil, fmt.Errorf("failed to list custom expenses: %w", err)
	}
	defer rows.Close()

	f.CustomExpenses = []models.CustomExpense{}
	for rows.Next() {
		var c models.CustomExpense
		if err := rows.Scan(&c.ID, &c.Name, &c.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan custom expense: %w", err)
		}
		f.CustomExpenses = append(f.CustomExpenses, c)
	}
	return f, rows.Err()
}

// Update overwrites every named field of the financials record.
func (r *FinancialsRepository) Update(ctx context.Context, f *models.Financials) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE financials SET monthly_lease = ?, payroll = ?, clio = ?, phone = ?, wifi = ?, printer = ?, postage = ?,
			efile = ?, supplies = ?, chargebacks = ?, staff_lunch = ?, other_monthly_expenses = ?, cash_on_hand = ?,
			debt = ?, cashbox_balance = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = 1`,
		f.MonthlyLease, f.Payroll, f.Clio, f.Phone, f.Wifi, f.Printer, f.Postage,
		f.Efile, f.Supplies, f.Chargebacks, f.StaffLunch, f.OtherMonthlyExpenses, f.CashOnHand,
		f.Debt, f.CashboxBalance,
	)
	if err != nil {
		return fmt.Errorf("failed to update financials: %w", err)
	}
	return nil
}

// SetExpenseField overwrites one named monthly line item.
func (r *FinancialsRepository) SetExpenseField(ctx context.Context, field models.ExpenseField, amount float64) error {
	column, ok := expenseColumns[field]
	if !ok {
		return fmt.Errorf("unknown expense field %q", field)
	}
	_, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE financials SET %s = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1", column),
		amount,
	)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", field, err)
	}
	return nil
}

// AddCustomExpense appends a custom expense row.
func (r *FinancialsRepository) AddCustomExpense(ctx context.Context, c *models.CustomExpense) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO custom_expenses (id, name, amount) VALUES (?, ?, ?)",
		c.ID, c.Name, c.Amount,
	)
	if err != nil {
		return fmt.Errorf("failed to add custom expense: %w", err)
	}
	return nil
}

// DeleteCustomExpense removes a custom expense row.
func (r *FinancialsRepository) DeleteCustomExpense(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM custom_expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete custom expense: %w", err)
	}
	return rowsAffectedOrNotFound(res, fmt.Errorf("custom expense %s: %w", id, models.ErrNotFound))
}

// Ensure FinancialsRepository implements the interface
var _ secondary.FinancialsRepository = (*FinancialsRepository)(nil)
