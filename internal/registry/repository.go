package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sweetmodels/sweet-models-api/internal/infrastructure/database"
)

// timeLayout is the storage format for device timestamps. Fixed-width
// nanosecond precision keeps lexical ORDER BY identical to chronological
// order, which RFC3339Nano's trimmed trailing zeros would break.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Repository defines the interface for device persistence.
type Repository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, id string) (*Device, error)
	List(ctx context.Context) ([]Device, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewRepository creates a new SQLite-backed device repository.
func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new device. ID, Status, and CreatedAt must already be set
// by the registry service.
func (r *SQLiteRepository) Create(ctx context.Context, device *Device) error {
	var lastSeen sql.NullString
	if device.LastSeenAt != nil {
		lastSeen = sql.NullString{String: device.LastSeenAt.UTC().Format(timeLayout), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO devices (id, name, mac_address, status, assigned_to_user_id, location, last_seen_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		device.ID, device.Name, device.MACAddress, device.Status,
		nullablePtr(device.AssignedToUserID), nullablePtr(device.Location),
		lastSeen, device.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateMAC
		}
		return fmt.Errorf("creating device: %w", err)
	}

	return nil
}

// GetByID retrieves a device by its unique ID.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Device, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, mac_address, status, assigned_to_user_id, location, last_seen_at, created_at FROM devices WHERE id = ?", id)
	return scanDeviceFrom(row)
}

// List returns all devices, newest first.
func (r *SQLiteRepository) List(ctx context.Context) ([]Device, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, mac_address, status, assigned_to_user_id, location, last_seen_at, created_at FROM devices ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}
	defer rows.Close()

	var devices []Device
	for rows.Next() {
		d, err := scanDeviceFrom(rows)
		if err != nil {
			return nil, err
		}
		devices = append(devices, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating devices: %w", err)
	}

	if devices == nil {
		devices = []Device{}
	}
	return devices, nil
}

// scanner is an interface for sql.Row and sql.Rows Scan methods.
type scanner interface {
	Scan(dest ...any) error
}

// scanDeviceFrom scans a device from any scanner (Row or Rows).
func scanDeviceFrom(s scanner) (*Device, error) {
	var d Device
	var assignedTo, location, lastSeen sql.NullString
	var createdAt string

	err := s.Scan(&d.ID, &d.Name, &d.MACAddress, &d.Status,
		&assignedTo, &location, &lastSeen, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDeviceNotFound
		}
		return nil, fmt.Errorf("scanning device: %w", err)
	}

	if assignedTo.Valid {
		d.AssignedToUserID = &assignedTo.String
	}
	if location.Valid {
		d.Location = &location.String
	}
	if lastSeen.Valid {
		t, err := time.Parse(timeLayout, lastSeen.String)
		if err != nil {
			return nil, fmt.Errorf("parsing last_seen_at: %w", err)
		}
		d.LastSeenAt = &t
	}

	d.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &d, nil
}

// nullablePtr converts an optional string to its SQL representation.
func nullablePtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
