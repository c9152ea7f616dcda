package auth

import (
	"strings"
	"testing"
	"time"
)

func newTestManager(t *testing.T, expiry time.Duration) *Manager {
	t.Helper()
	mgr, err := NewManager("test-secret", "inventory-api", "inventory-clients", expiry)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}
	return mgr
}

func TestTokenLifecycle(t *testing.T) {
	mgr := newTestManager(t, time.Minute*30)

	claims := ClaimSet{UserID: "42", Email: "user@example.com", Role: "Admin"}
	token, expiresAt, err := mgr.GenerateToken(claims)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	parsed, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if parsed.UserID != claims.UserID {
		t.Fatalf("expected subject %s, got %s", claims.UserID, parsed.UserID)
	}
	if parsed.Email != claims.Email {
		t.Fatalf("expected email %s, got %s", claims.Email, parsed.Email)
	}
	if parsed.Role != claims.Role {
		t.Fatalf("expected role %s, got %s", claims.Role, parsed.Role)
	}
	if parsed.Subject != claims.UserID {
		t.Fatalf("expected registered subject %s, got %s", claims.UserID, parsed.Subject)
	}
}

func TestZeroExpiryTokenIsExpired(t *testing.T) {
	mgr := newTestManager(t, 0)

	token, _, err := mgr.GenerateToken(ClaimSet{UserID: "42", Email: "a@b.com", Role: "User"})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if _, err := mgr.ParseToken(token); err == nil {
		t.Fatal("expected zero-TTL token to be rejected as expired")
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	mgr := newTestManager(t, time.Minute)

	token, _, err := mgr.GenerateToken(ClaimSet{UserID: "42", Email: "a@b.com", Role: "User"})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := mgr.ParseToken(tampered); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestParseRejectsForeignAudience(t *testing.T) {
	issuer := newTestManager(t, time.Minute)
	other, err := NewManager("test-secret", "inventory-api", "some-other-audience", time.Minute)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	token, _, err := issuer.GenerateToken(ClaimSet{UserID: "42", Email: "a@b.com", Role: "User"})
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected audience validation to fail")
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager("   ", "iss", "aud", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewManager("secret", "", "aud", time.Hour); err == nil {
		t.Fatal("expected error for empty issuer")
	}
	if _, err := NewManager("secret", "iss", "", time.Hour); err == nil {
		t.Fatal("expected error for empty audience")
	}
	if _, err := NewManager("secret", "iss", "aud", -time.Minute); err == nil {
		t.Fatal("expected error for negative expiry")
	}
}
