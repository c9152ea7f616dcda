package entity

import "time"

// AuthLoginRequest is the login request payload.
type AuthLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthRegisterRequest is the registration request payload.
type AuthRegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	RoleID   string `json:"role_id"`
}

// AuthLoginResponse is returned after a successful login. Expiration is the
// token's expiry instant, echoed so clients can schedule re-authentication.
type AuthLoginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
	UserID     string    `json:"user_id"`
	Role       string    `json:"role"`
}
