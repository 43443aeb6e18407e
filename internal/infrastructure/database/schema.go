package database

import (
	"context"
	"fmt"
)

// schema is the full database schema, applied idempotently at startup.
// The service deliberately carries no versioned migration machinery: the
// schema is small, additive changes use CREATE ... IF NOT EXISTS, and the
// deployment recreates the database from scratch when it must.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'user',
    display_name  TEXT,
    created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS devices (
    id                  TEXT PRIMARY KEY,
    name                TEXT NOT NULL,
    mac_address         TEXT NOT NULL UNIQUE,
    status              TEXT NOT NULL DEFAULT 'active',
    assigned_to_user_id TEXT,
    location            TEXT,
    last_seen_at        TEXT,
    created_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_devices_created_at ON devices(created_at);
`

// EnsureSchema applies the embedded schema to the database.
// Safe to call on every startup; existing tables are left untouched.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: If applying the schema fails
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}
