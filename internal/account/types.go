package account

import (
	"errors"
	"time"
)

// Sentinel errors returned by account operations.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailExists is returned when creating an account with a taken email.
	ErrEmailExists = errors.New("email already exists")
)

// Default roles. Role is a free-text tag on the account record; the API
// reflects it back to callers and applies no authorisation logic to it.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account represents a login-capable account for the admin frontend.
//
// Accounts are created out of band (first-boot seed or operator SQL);
// the HTTP API only reads them during login.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialised
	Role         string    `json:"role"`
	DisplayName  *string   `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}
