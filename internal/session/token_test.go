package session

import (
	"testing"
	"time"

	"github.com/sweetmodels/sweet-models-api/internal/account"
)

func TestGenerateAndParseToken(t *testing.T) {
	acc := &account.Account{
		ID:   "acc-001",
		Role: account.RoleAdmin,
	}
	secret := "test-secret-key-for-jwt-signing"

	token, err := GenerateToken(acc, secret, 60)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	if claims.Subject != "acc-001" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "acc-001")
	}

	if claims.Role != account.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, account.RoleAdmin)
	}

	if claims.ID == "" {
		t.Error("JTI (ID) should not be empty")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	acc := &account.Account{ID: "acc-001", Role: account.RoleUser}

	token, err := GenerateToken(acc, "correct-secret", 60)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = ParseToken(token, "wrong-secret")
	if err == nil {
		t.Error("ParseToken() should fail with wrong secret")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	// Empty string
	_, err := ParseToken("", "secret")
	if err == nil {
		t.Error("ParseToken() should fail with empty token")
	}

	// Malformed JWT (wrong number of segments)
	_, err = ParseToken("abc.def", "secret")
	if err == nil {
		t.Error("ParseToken() should fail with malformed JWT")
	}

	_, err = ParseToken("not-a-valid-jwt", "secret")
	if err == nil {
		t.Error("ParseToken() should fail with invalid token string")
	}
}

func TestGenerateToken_DefaultTTL(t *testing.T) {
	acc := &account.Account{ID: "acc-001", Role: account.RoleUser}

	// TTL of 0 should default to 24 hours
	token, err := GenerateToken(acc, "secret", 0)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	expectedExpiry := time.Now().Add(24 * time.Hour)
	diff := claims.ExpiresAt.Time.Sub(expectedExpiry)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("default TTL should be ~24 hours, got expiry diff of %v", diff)
	}

	// Token should not be expired yet
	if claims.ExpiresAt.Time.Before(time.Now()) {
		t.Error("newly generated token should not be expired")
	}
}
