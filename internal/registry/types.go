package registry

import "time"

// DefaultStatus is applied when a caller omits the device status.
const DefaultStatus = "active"

// Device represents a physical device tracked by the registry.
//
// Nullable fields serialise as JSON null rather than being omitted, so the
// frontend always sees the full shape.
type Device struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	MACAddress       string     `json:"mac_address"`
	Status           string     `json:"status"`
	AssignedToUserID *string    `json:"assigned_to_user_id"`
	Location         *string    `json:"location"`
	LastSeenAt       *time.Time `json:"last_seen_at"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CreateParams are the caller-supplied fields for a new device.
// ID, CreatedAt, and a defaulted Status are assigned by the registry.
type CreateParams struct {
	Name             string  `json:"name"`
	MACAddress       string  `json:"mac_address"`
	Status           *string `json:"status"`
	AssignedToUserID *string `json:"assigned_to_user_id"`
	Location         *string `json:"location"`
}
