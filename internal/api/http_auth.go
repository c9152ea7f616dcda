package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"inventory/internal/auth"
	"inventory/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Login authenticates a user and issues a signed token.
func (h *HTTPHandler) Login(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		BadRequest(c, ErrCodeInvalidRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Error("failed to load user for login")
			InternalError(c, "failed to process login")
			return
		}
		logrus.WithField("email", email).Warn("login attempt for unknown email")
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid credentials")
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		logrus.WithField("email", email).Warn("password verification failed")
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, "invalid credentials")
		return
	}

	claims := auth.BuildClaims(user)
	token, expiresAt, err := h.authManager.GenerateToken(claims)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		InternalError(c, "failed to create session")
		return
	}

	c.JSON(http.StatusOK, entity.AuthLoginResponse{
		Token:      token,
		Expiration: expiresAt,
		UserID:     user.ID,
		Role:       claims.Role,
	})
}

// Register creates a new account. The route is anonymous; new accounts get
// the "User" role unless a valid role id is supplied.
func (h *HTTPHandler) Register(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	var req entity.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)
	name := strings.TrimSpace(req.Name)

	if err := validatePassword(password); err != nil {
		BadRequest(c, ErrCodeWeakPassword, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	inUse, err := h.repo.UserEmailInUse(ctx, email, "")
	if err != nil {
		logrus.WithError(err).Error("failed to check email uniqueness")
		InternalError(c, "failed to register user")
		return
	}
	if inUse {
		BadRequest(c, ErrCodeEmailExists, "the email is already in use")
		return
	}

	role, err := h.resolveRole(ctx, req.RoleID)
	if err != nil {
		BadRequest(c, ErrCodeRoleNotFound, "role not found")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		InternalError(c, "failed to register user")
		return
	}

	user := &entity.DbUser{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role,
	}

	if err := h.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			BadRequest(c, ErrCodeEmailExists, "the email is already in use")
			return
		}
		logrus.WithError(err).Error("failed to create user")
		InternalError(c, "failed to register user")
		return
	}

	c.JSON(http.StatusCreated, makeUserSummary(user))
}

// Me returns the profile backing the authenticated token.
func (h *HTTPHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbUser, err := h.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeUserNotFound, "user not found")
			return
		}
		logrus.WithError(err).WithField("user_id", user.ID).Error("failed to load user profile")
		InternalError(c, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, makeUserSummary(dbUser))
}

// resolveRole maps an optional role id to a role row, defaulting to "User".
func (h *HTTPHandler) resolveRole(ctx context.Context, roleID string) (*entity.DbRole, error) {
	trimmed := strings.TrimSpace(roleID)
	if trimmed == "" {
		return h.repo.GetRoleByName(ctx, entity.RoleUser)
	}
	return h.repo.GetRole(ctx, trimmed)
}

// validatePassword enforces the account password policy: 6-50 characters
// with at least one lowercase letter, one uppercase letter and one digit.
func validatePassword(password string) error {
	if len(password) < 6 || len(password) > 50 {
		return errors.New("the password must be between 6 and 50 characters")
	}
	var hasLower, hasUpper, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return errors.New("the password must have at least one lowercase letter, one uppercase letter, and one number")
	}
	return nil
}

func makeUserSummary(user *entity.DbUser) entity.UserSummary {
	if user == nil {
		return entity.UserSummary{}
	}
	roleName := entity.RoleUser
	if user.Role != nil && strings.TrimSpace(user.Role.Name) != "" {
		roleName = user.Role.Name
	}
	return entity.UserSummary{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
