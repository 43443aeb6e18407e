// Package account provides account storage and credential handling for the
// Sweet Models API.
//
// It implements:
//   - A SQLite-backed account repository (lookup by email/id, list, count)
//   - Argon2id password hashing (OWASP 2025 recommendation) in PHC format
//   - First-boot admin seeding with a generated throwaway password
//
// Accounts are created out of band: the HTTP API reads them during login
// and never mutates them. Role is a free-text tag reflected back to the
// frontend; no authorisation logic hangs off it here.
package account
