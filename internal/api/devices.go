package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetmodels/sweet-models-api/internal/registry"
)

// handleListDevices returns all registered devices, newest first.
//
// GET /devices
//
// Responses:
//   - 200: JSON array of devices (possibly empty, never null)
//   - 500: DATABASE_ERROR (store failure)
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := s.registry.List(r.Context())
	if err != nil {
		s.logger.Error("listing devices failed",
			"error", err,
			"request_id", r.Context().Value(ctxKeyRequestID),
		)
		writeError(w, http.StatusInternalServerError, ErrCodeDatabaseError, "Failed to fetch devices")
		return
	}

	writeJSON(w, http.StatusOK, devices)
}

// handleCreateDevice registers a new device.
//
// POST /devices
//
// Responses:
//   - 201: the created device with server-assigned id, status, created_at
//   - 400: BAD_REQUEST (malformed body), DUPLICATE_DEVICE (MAC collision),
//     CREATE_FAILED (any other store failure)
func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	var params registry.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	device, err := s.registry.Create(r.Context(), params)
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateMAC) {
			writeError(w, http.StatusBadRequest, ErrCodeDuplicateDevice, "A device with this MAC address already exists")
			return
		}
		s.logger.Error("creating device failed",
			"error", err,
			"mac_address", params.MACAddress,
			"request_id", r.Context().Value(ctxKeyRequestID),
		)
		writeError(w, http.StatusBadRequest, ErrCodeCreateFailed, "Failed to create device")
		return
	}

	writeJSON(w, http.StatusCreated, device)
}
