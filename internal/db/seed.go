package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/firmos/internal/models"
)

// SeedCaseTypes stores the default case templates. Existing ids are kept.
// Returns the number of templates inserted.
func SeedCaseTypes(ctx context.Context, database *sql.DB) (int, error) {
	inserted := 0
	for _, ct := range models.DefaultCaseTypes() {
		res, err := database.ExecContext(ctx,
			"INSERT OR IGNORE INTO case_types (id, name, estimated_hours) VALUES (?, ?, ?)",
			ct.ID, ct.Name, ct.EstimatedHours,
		)
		if err != nil {
			return inserted, fmt.Errorf("seed case types: %w", err)
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
	}
	return inserted, nil
}

// SeedFixtures populates the database with development fixtures:
// a small staff, a few cases and a week of activity ending at now.
func SeedFixtures(ctx context.Context, database *sql.DB, now time.Time) error {
	if _, err := SeedCaseTypes(ctx, database); err != nil {
		return err
	}

	employees := []struct {
		id, name, role      string
		hourly, salary, hrs float64
	}{
		{"EMP-001", "Dana Whitfield", "Lead Paralegal", 28, 0, 8},
		{"EMP-002", "Marcus Hale", "Legal Assistant", 0, 41600, 8},
		{"EMP-003", "Priya Raman", "Intake Clerk", 18, 0, 4},
	}
	for _, e := range employees {
		rate := e.hourly
		if rate == 0 {
			rate = e.salary / 2080
		}
		if _, err := database.ExecContext(ctx,
			"INSERT INTO employees (id, name, role, hourly_cost, salary, daily_hours, daily_target) VALUES (?, ?, ?, ?, ?, ?, ?)",
			e.id, e.name, e.role, e.hourly, e.salary, e.hrs, rate*3,
		); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}

	due := now.AddDate(0, 0, 30).Format(models.DateLayout)
	clients := []struct {
		id, name, sponsor, caseType, status, billing string
		flatFee, est, logged                         float64
		lastContact                                  time.Time
	}{
		{"CLI-001", "R. Alvarez", "M. Alvarez", "Habeas Corpus Art. 11.07", "active", "flat_fee", 7500, 75, 12, now.AddDate(0, 0, -3)},
		{"CLI-002", "T. Booker", "L. Booker", "Parole Packet", "active", "flat_fee", 2500, 25, 27, now.AddDate(0, 0, -20)},
		{"CLI-003", "J. Nguyen", "K. Nguyen", "Appeal - Civil", "risk", "hourly", 0, 55, 0, now.AddDate(0, 0, -40)},
		{"CLI-004", "S. Ortiz", "A. Ortiz", "TDCJ Complaint", "churned", "hourly", 0, 15, 0, now.AddDate(0, 0, -90)},
	}
	for _, c := range clients {
		if _, err := database.ExecContext(ctx,
			`INSERT INTO clients (id, name, sponsor_name, case_type, status, billing_type, flat_fee_amount, estimated_hours, hours_logged, last_communication, next_payment_due)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.id, c.name, c.sponsor, c.caseType, c.status, c.billing, c.flatFee, c.est, c.logged, c.lastContact, due,
		); err != nil {
			return fmt.Errorf("seed clients: %w", err)
		}
	}

	if _, err := database.ExecContext(ctx,
		`UPDATE financials SET monthly_lease = 2400, clio = 150, phone = 120, wifi = 90, printer = 60,
			postage = 80, efile = 45, supplies = 100, staff_lunch = 200, cash_on_hand = 18000, cashbox_balance = 250
		WHERE id = 1`,
	); err != nil {
		return fmt.Errorf("seed financials: %w", err)
	}

	today := now.Format(models.DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(models.DateLayout)
	logs := []struct {
		id, employeeID, clientID, date, desc string
		hours, labor, production             float64
	}{
		{"LOG-001", "EMP-001", "CLI-001", yesterday, "Drafted application memorandum", 4, 112, 146},
		{"LOG-002", "EMP-002", "CLI-002", today, "Assembled parole packet exhibits", 3, 60, 85.5},
		{"LOG-003", "EMP-003", "", today, "Intake calls", 2, 36, 53},
	}
	for _, l := range logs {
		var clientID sql.NullString
		if l.clientID != "" {
			clientID = sql.NullString{String: l.clientID, Valid: true}
		}
		if _, err := database.ExecContext(ctx,
			"INSERT INTO task_logs (id, employee_id, client_id, date, description, hours, labor_cost, production_cost, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'completed')",
			l.id, l.employeeID, clientID, l.date, l.desc, l.hours, l.labor, l.production,
		); err != nil {
			return fmt.Errorf("seed task logs: %w", err)
		}
	}

	if _, err := database.ExecContext(ctx,
		`INSERT INTO cash_transactions (id, date, type, payment_method, category, amount, description, sender_or_recipient, performed_by)
		VALUES ('TX-001', ?, 'in', 'cash', 'Initial', 250, 'Opening float', '', 'seed')`,
		now.AddDate(0, 0, -7),
	); err != nil {
		return fmt.Errorf("seed cash transactions: %w", err)
	}

	if _, err := database.ExecContext(ctx,
		`INSERT INTO income_entries (id, date, amount, client_name, description, category, method)
		VALUES ('INC-001', ?, 1500, 'M. Alvarez', 'Second installment', 'Flat Fee', 'Zelle')`,
		today,
	); err != nil {
		return fmt.Errorf("seed income: %w", err)
	}

	if _, err := database.ExecContext(ctx,
		`INSERT INTO tickets (id, ticket_number, subject, description, priority, status, created_at, submitted_by)
		VALUES ('TCK-001', '00001', 'Scanner offline', 'Front desk scanner will not power on', 'medium', 'open', ?, 'Priya Raman')`,
		now,
	); err != nil {
		return fmt.Errorf("seed tickets: %w", err)
	}

	return nil
}
