// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Instead, use
// setupTestDB() and the seed* helpers.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/firmos/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedEmployee inserts a test employee and returns its ID.
func seedEmployee(t *testing.T, db *sql.DB, id, name string, hourly float64) string {
	t.Helper()
	if id == "" {
		id = "EMP-001"
	}
	if name == "" {
		name = "Test Employee"
	}
	_, err := db.Exec("INSERT INTO employees (id, name, hourly_cost) VALUES (?, ?, ?)", id, name, hourly)
	if err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return id
}

// seedFlatFeeClient inserts an active flat-fee client and returns its ID.
func seedFlatFeeClient(t *testing.T, db *sql.DB, id string, fee, estimated float64) string {
	t.Helper()
	if id == "" {
		id = "CLI-001"
	}
	_, err := db.Exec(
		`INSERT INTO clients (id, name, sponsor_name, status, billing_type, flat_fee_amount, estimated_hours)
		VALUES (?, 'Test Client', 'Test Sponsor', 'active', 'flat_fee', ?, ?)`,
		id, fee, estimated,
	)
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	return id
}
