// Package session issues signed session tokens for the Sweet Models API.
//
// Login resolves an account by exact email, verifies the presented password
// through a pluggable CredentialVerifier (Argon2id by default), and returns
// an HS256-signed JWT bound to the account ID. Unknown email and wrong
// password collapse into a single ErrInvalidCredentials; store failures
// surface separately so the API can report them as server errors.
//
// Tokens are stateless: nothing is stored, and there is no revocation.
// Expiry is the only session bound.
package session
