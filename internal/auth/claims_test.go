package auth

import (
	"testing"

	"inventory/internal/entity"
)

func TestBuildClaims(t *testing.T) {
	user := &entity.DbUser{
		ID:    "1b671a64-40d5-491e-99b0-da01ff1f3341",
		Email: "a@b.com",
		Role:  &entity.DbRole{Name: entity.RoleAdmin},
	}
	claims := BuildClaims(user)
	if claims.UserID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != entity.RoleAdmin {
		t.Fatalf("expected role %s, got %s", entity.RoleAdmin, claims.Role)
	}
}

func TestBuildClaimsRoleFallback(t *testing.T) {
	user := &entity.DbUser{ID: "abc", Email: "a@b.com"}
	if got := BuildClaims(user).Role; got != entity.RoleUser {
		t.Fatalf("expected fallback role %q, got %q", entity.RoleUser, got)
	}

	user.Role = &entity.DbRole{Name: "   "}
	if got := BuildClaims(user).Role; got != entity.RoleUser {
		t.Fatalf("expected blank role name to fall back to %q, got %q", entity.RoleUser, got)
	}
}
