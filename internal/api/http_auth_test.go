package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory/internal/auth"
	"inventory/internal/entity"
	"inventory/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUserRepo serves a single account for login tests. Unimplemented
// repository methods panic, which is fine for routes that never reach them.
type stubUserRepo struct {
	model.Repository
	user *entity.DbUser
}

func (s *stubUserRepo) GetUserByEmail(_ context.Context, email string) (*entity.DbUser, error) {
	if s.user != nil && s.user.Email == email {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newLoginRouter(t *testing.T) (*gin.Engine, *HTTPHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("Secret1")
	require.NoError(t, err)

	handler := newTestHandler(t)
	handler.repo = &stubUserRepo{
		user: &entity.DbUser{
			ID:           "user-1",
			Name:         "Ada",
			Email:        "a@b.com",
			PasswordHash: hash,
			Role:         &entity.DbRole{ID: "role-1", Name: entity.RoleAdmin},
		},
	}

	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	return router, handler
}

func doLogin(t *testing.T, router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(entity.AuthLoginRequest{Email: email, Password: password})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsTokenAndExpiration(t *testing.T) {
	router, handler := newLoginRouter(t)

	w := doLogin(t, router, "a@b.com", "Secret1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.AuthLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.True(t, resp.Expiration.After(time.Now()))
	require.Equal(t, "user-1", resp.UserID)
	require.Equal(t, entity.RoleAdmin, resp.Role)

	claims, err := handler.authManager.ParseToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestLoginNormalisesEmailCase(t *testing.T) {
	router, _ := newLoginRouter(t)

	w := doLogin(t, router, "A@B.com", "Secret1")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router, _ := newLoginRouter(t)

	w := doLogin(t, router, "a@b.com", "WrongSecret1")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, ErrCodeInvalidCredentials, resp.Code)
	require.NotContains(t, w.Body.String(), `"token"`)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	router, _ := newLoginRouter(t)

	w := doLogin(t, router, "nobody@b.com", "Secret1")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, ErrCodeInvalidCredentials, resp.Code)
}

func TestLoginRejectsBlankCredentials(t *testing.T) {
	router, _ := newLoginRouter(t)

	w := doLogin(t, router, "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Secret1", false},
		{"too short", "Ab1", true},
		{"missing upper", "secret1", true},
		{"missing lower", "SECRET1", true},
		{"missing digit", "Secrets", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
