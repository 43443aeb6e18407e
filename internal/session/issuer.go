package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweetmodels/sweet-models-api/internal/account"
)

// ErrInvalidCredentials is returned when the email or password is wrong.
// An unknown email and a wrong password are indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks a presented secret against a stored credential.
// The default implementation is Argon2id, but the issuer does not care:
// swapping the scheme never touches login control flow.
type CredentialVerifier interface {
	Verify(stored, presented string) (bool, error)
}

// Argon2Verifier verifies Argon2id PHC password hashes.
type Argon2Verifier struct{}

// Verify checks a plaintext password against an Argon2id PHC hash.
func (Argon2Verifier) Verify(stored, presented string) (bool, error) {
	return account.VerifyPassword(presented, stored)
}

// Issuer authenticates credentials and issues signed session tokens.
type Issuer struct {
	accounts account.Repository
	verifier CredentialVerifier
	secret   string
	ttl      int // minutes
}

// NewIssuer creates a session issuer.
// A nil verifier defaults to Argon2id.
func NewIssuer(accounts account.Repository, verifier CredentialVerifier, secret string, ttlMinutes int) *Issuer {
	if verifier == nil {
		verifier = Argon2Verifier{}
	}
	return &Issuer{
		accounts: accounts,
		verifier: verifier,
		secret:   secret,
		ttl:      ttlMinutes,
	}
}

// Login authenticates an email/password pair and returns a signed token
// plus the matched account.
//
// Failure modes:
//   - ErrInvalidCredentials: unknown email or wrong password
//   - anything else: store or signing failure (persistence error to callers)
func (i *Issuer) Login(ctx context.Context, email, password string) (string, *account.Account, error) {
	acc, err := i.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("looking up account: %w", err)
	}

	ok, err := i.verifier.Verify(acc.PasswordHash, password)
	if err != nil {
		// A malformed stored hash reads as a failed login, not a server error.
		return "", nil, ErrInvalidCredentials
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(acc, i.secret, i.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, acc, nil
}
