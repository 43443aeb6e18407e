package registry

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the devices schema applied.
// The database file is cleaned up when the test completes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "registry-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schemaSQL := `
		CREATE TABLE devices (
			id                  TEXT PRIMARY KEY,
			name                TEXT NOT NULL,
			mac_address         TEXT NOT NULL UNIQUE,
			status              TEXT NOT NULL DEFAULT 'active',
			assigned_to_user_id TEXT,
			location            TEXT,
			last_seen_at        TEXT,
			created_at          TEXT NOT NULL
		);

		CREATE INDEX idx_devices_created_at ON devices(created_at);
	`
	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("applying devices schema: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }
