package db

// SchemaSQL is the complete schema for fresh firmos installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it through GetSchemaSQL(), so a column referenced by repository
// code but missing here fails immediately with "no such column".
//
// # Keeping Schema in Sync
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Run `make test` to verify alignment
//
// fixedOverheadHourly has no column. It is derived on every read.
const SchemaSQL = `
-- Staff and their cost basis
CREATE TABLE IF NOT EXISTS employees (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'Staff',
	hourly_cost REAL NOT NULL DEFAULT 0,
	salary REAL NOT NULL DEFAULT 0,
	daily_hours REAL NOT NULL DEFAULT 8,
	daily_target REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Logged staff work (append-only, costs frozen at logging time)
CREATE TABLE IF NOT EXISTS task_logs (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL,
	client_id TEXT,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	hours REAL NOT NULL CHECK (hours > 0),
	labor_cost REAL NOT NULL DEFAULT 0,
	production_cost REAL NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'completed' CHECK (status IN ('completed', 'blocked', 'in-progress')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (employee_id) REFERENCES employees(id)
);

CREATE INDEX IF NOT EXISTS idx_task_logs_date ON task_logs(date);
CREATE INDEX IF NOT EXISTS idx_task_logs_employee ON task_logs(employee_id);

-- Case files
CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	sponsor_name TEXT NOT NULL,
	case_type TEXT NOT NULL DEFAULT 'General',
	status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'risk', 'churned')),
	retainer_fee REAL NOT NULL DEFAULT 0,
	monthly_fee REAL NOT NULL DEFAULT 0,
	last_communication DATETIME,
	next_payment_due TEXT,
	notes TEXT,
	billing_type TEXT NOT NULL DEFAULT 'hourly' CHECK (billing_type IN ('hourly', 'flat_fee')),
	flat_fee_amount REAL NOT NULL DEFAULT 0,
	estimated_hours REAL NOT NULL DEFAULT 0,
	hours_logged REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Intake templates
CREATE TABLE IF NOT EXISTS case_types (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	estimated_hours REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Singleton settings/financials record
CREATE TABLE IF NOT EXISTS financials (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	monthly_lease REAL NOT NULL DEFAULT 0,
	payroll REAL NOT NULL DEFAULT 0,
	clio REAL NOT NULL DEFAULT 0,
	phone REAL NOT NULL DEFAULT 0,
	wifi REAL NOT NULL DEFAULT 0,
	printer REAL NOT NULL DEFAULT 0,
	postage REAL NOT NULL DEFAULT 0,
	efile REAL NOT NULL DEFAULT 0,
	supplies REAL NOT NULL DEFAULT 0,
	chargebacks REAL NOT NULL DEFAULT 0,
	staff_lunch REAL NOT NULL DEFAULT 0,
	other_monthly_expenses REAL NOT NULL DEFAULT 0,
	cash_on_hand REAL NOT NULL DEFAULT 0,
	debt REAL NOT NULL DEFAULT 0,
	cashbox_balance REAL NOT NULL DEFAULT 0,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

INSERT OR IGNORE INTO financials (id) VALUES (1);

CREATE TABLE IF NOT EXISTS custom_expenses (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	amount REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Cashbox ledger (append-only)
CREATE TABLE IF NOT EXISTS cash_transactions (
	id TEXT PRIMARY KEY,
	date DATETIME NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('in', 'out')),
	payment_method TEXT NOT NULL CHECK (payment_method IN ('cash', 'check')),
	category TEXT NOT NULL,
	amount REAL NOT NULL CHECK (amount > 0),
	description TEXT NOT NULL,
	sender_or_recipient TEXT,
	performed_by TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cash_transactions_date ON cash_transactions(date);

-- Received payments for weekly P&L (append-only)
CREATE TABLE IF NOT EXISTS income_entries (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	amount REAL NOT NULL,
	client_name TEXT,
	description TEXT,
	category TEXT NOT NULL,
	method TEXT NOT NULL,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Support tickets. ticket_number is deliberately not unique.
CREATE TABLE IF NOT EXISTS tickets (
	id TEXT PRIMARY KEY,
	ticket_number TEXT NOT NULL,
	subject TEXT NOT NULL,
	description TEXT,
	priority TEXT NOT NULL DEFAULT 'medium' CHECK (priority IN ('low', 'medium', 'high', 'urgent')),
	status TEXT NOT NULL DEFAULT 'open' CHECK (status IN ('open', 'in_progress', 'resolved', 'closed')),
	created_at DATETIME NOT NULL,
	submitted_by TEXT,
	resolved_at DATETIME,
	resolution TEXT
);

CREATE INDEX IF NOT EXISTS idx_tickets_number ON tickets(ticket_number);

-- Activity log (audit trail of mutations)
CREATE TABLE IF NOT EXISTS activity_logs (
	id TEXT PRIMARY KEY,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	actor_id TEXT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL CHECK (action IN ('create', 'update', 'delete')),
	field_name TEXT,
	old_value TEXT,
	new_value TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_logs_entity ON activity_logs(entity_type, entity_id);
CREATE INDEX IF NOT EXISTS idx_activity_logs_timestamp ON activity_logs(timestamp);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
