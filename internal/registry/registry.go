package registry

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry provides device management on top of a Repository.
//
// It owns the server-assigned fields: new devices get a UUID, a defaulted
// status, and a creation timestamp here, never from the caller.
//
// All public methods are thread-safe (the registry holds no mutable state;
// concurrency control lives in the database pool).
type Registry struct {
	repo   Repository
	logger Logger
}

// NewRegistry creates a new device registry.
func NewRegistry(repo Repository) *Registry {
	return &Registry{
		repo:   repo,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// List retrieves all devices ordered by creation time, newest first.
// An empty registry returns an empty slice, not an error.
func (r *Registry) List(ctx context.Context) ([]Device, error) {
	return r.repo.List(ctx)
}

// Get retrieves a device by ID.
// Returns ErrDeviceNotFound if the device does not exist.
func (r *Registry) Get(ctx context.Context, id string) (*Device, error) {
	return r.repo.GetByID(ctx, id)
}

// Create registers a new device and returns it with server-assigned fields.
//
// Status defaults to "active" when absent or blank. The MAC address must be
// unique; a collision returns ErrDuplicateMAC with no partial effects.
// assigned_to_user_id is stored as given without referential checks.
func (r *Registry) Create(ctx context.Context, params CreateParams) (*Device, error) {
	status := DefaultStatus
	if params.Status != nil && strings.TrimSpace(*params.Status) != "" {
		status = *params.Status
	}

	device := &Device{
		ID:               uuid.NewString(),
		Name:             params.Name,
		MACAddress:       params.MACAddress,
		Status:           status,
		AssignedToUserID: params.AssignedToUserID,
		Location:         params.Location,
		CreatedAt:        time.Now().UTC(),
	}

	if err := r.repo.Create(ctx, device); err != nil {
		return nil, err
	}

	r.logger.Info("device registered",
		"device_id", device.ID,
		"mac_address", device.MACAddress,
		"status", device.Status,
	)

	return device, nil
}
