package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/pratik-mahalle/gigmarket/internal/repository/postgres"
	"github.com/pratik-mahalle/gigmarket/migrations"
)

// NewTestDB creates an in-memory SQLite database with the full schema
// applied. The connection is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// A single connection keeps every statement on the same in-memory
	// database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := postgres.RunMigrations(db, migrations.Files); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return db
}
