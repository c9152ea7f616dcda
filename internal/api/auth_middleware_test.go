package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory/internal/auth"
	"inventory/internal/config"
	"inventory/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *HTTPHandler {
	t.Helper()
	cfg := config.Config{
		JWTSecret:            "test-secret",
		JWTIssuer:            "inventory-api",
		JWTAudience:          "inventory-clients",
		JWTExpirationMinutes: 60,
	}
	handler, err := NewHTTPHandler(cfg, nil, nil)
	require.NoError(t, err)
	return handler
}

func (h *HTTPHandler) issueTestToken(t *testing.T, role string) string {
	t.Helper()
	token, _, err := h.authManager.GenerateToken(auth.ClaimSet{
		UserID: "user-1",
		Email:  "a@b.com",
		Role:   role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler(t)

	router := gin.New()
	router.GET("/protected", handler.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler(t)

	router := gin.New()
	router.GET("/protected", handler.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler(t)

	router := gin.New()
	router.GET("/protected", handler.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler(t)
	token := handler.issueTestToken(t, entity.RoleUser)

	var seen *RequestUser
	router := gin.New()
	router.GET("/protected", handler.AuthMiddleware(), func(c *gin.Context) {
		seen = CurrentUser(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	require.Equal(t, "user-1", seen.ID)
	require.Equal(t, "a@b.com", seen.Email)
	require.Equal(t, entity.RoleUser, seen.Role)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler(t)
	token := handler.issueTestToken(t, entity.RoleUser)

	router := gin.New()
	router.GET("/admin", handler.AuthMiddleware(), handler.RequireRole(entity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAdmitsMatchingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newTestHandler(t)
	token := handler.issueTestToken(t, entity.RoleAdmin)

	router := gin.New()
	router.GET("/admin", handler.AuthMiddleware(), handler.RequireRole(entity.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}
