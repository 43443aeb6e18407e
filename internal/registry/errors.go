package registry

import "errors"

// Domain errors for the registry package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, registry.ErrDuplicateMAC) {
//	    // handle duplicate case
//	}
var (
	// ErrDuplicateMAC is returned when a device's MAC address is already registered.
	ErrDuplicateMAC = errors.New("registry: mac address already registered")

	// ErrDeviceNotFound is returned when a device ID does not exist.
	ErrDeviceNotFound = errors.New("registry: device not found")
)
