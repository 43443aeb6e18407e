package api

import (
	"encoding/json"
	"net/http"
)

// Error represents the error envelope returned on every failure:
//
//	{"error": "DUPLICATE_DEVICE", "message": "a device with this MAC address already exists"}
//
// The error field is a machine-checkable UPPER_SNAKE kind the frontend
// switches on; the message is for humans.
type Error struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

// Error kinds. The status mapping is fixed: invalid credentials are 401,
// persistence failures are 500, and creation failures are 400 whether the
// cause is a duplicate or not.
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
	ErrCodeDuplicateDevice    = "DUPLICATE_DEVICE"
	ErrCodeCreateFailed       = "CREATE_FAILED"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Code:    code,
		Message: message,
	})
}

// writeBadRequest writes a 400 BAD_REQUEST response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// writeInternalError writes a 500 INTERNAL_ERROR response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}
