package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Error codes surfaced in the API error envelope.
const (
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeForbidden          = "ERR_FORBIDDEN"
	ErrCodeNotFound           = "ERR_NOT_FOUND"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"

	ErrCodeUserNotFound        = "ERR_USER_NOT_FOUND"
	ErrCodeRoleNotFound        = "ERR_ROLE_NOT_FOUND"
	ErrCodeProductNotFound     = "ERR_PRODUCT_NOT_FOUND"
	ErrCodeCategoryNotFound    = "ERR_CATEGORY_NOT_FOUND"
	ErrCodeSupplierNotFound    = "ERR_SUPPLIER_NOT_FOUND"
	ErrCodeStockNotFound       = "ERR_STOCK_NOT_FOUND"
	ErrCodeProductTypeNotFound = "ERR_PRODUCT_TYPE_NOT_FOUND"

	ErrCodeNameExists       = "ERR_NAME_EXISTS"
	ErrCodeRoleReferenced   = "ERR_ROLE_REFERENCED"
	ErrCodeWeakPassword     = "ERR_WEAK_PASSWORD"
	ErrCodeCannotDeleteSelf = "ERR_CANNOT_DELETE_SELF"
)

// APIError is the uniform error envelope returned by every endpoint.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse writes the error envelope.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails writes the error envelope with extra details.
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden writes a 403 envelope.
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError writes a 500 envelope. The message must stay generic;
// whatever caused the failure belongs in the log, not the response.
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable writes a 503 envelope.
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// InvalidPayload writes the standard malformed-body 400 envelope.
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// RecoveryHandler is the single top-level boundary converting panics into
// the uniform 500 envelope. Internals are logged, never returned.
func RecoveryHandler(c *gin.Context, recovered any) {
	logrus.WithFields(logrus.Fields{
		"panic":  recovered,
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("recovered from panic")
	c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
		Code:    ErrCodeInternalError,
		Message: "An unexpected error occurred. Please try again later.",
	})
}
