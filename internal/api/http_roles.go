package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"inventory/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListRoles returns all roles.
func (h *HTTPHandler) ListRoles(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	roles, err := h.repo.ListRoles(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list roles")
		InternalError(c, "failed to load roles")
		return
	}

	c.JSON(http.StatusOK, entity.RoleListResponse{Roles: roles})
}

// GetRole returns a single role by id.
func (h *HTTPHandler) GetRole(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid role id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	role, err := h.repo.GetRole(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeRoleNotFound, "role not found")
			return
		}
		logrus.WithError(err).Error("failed to load role")
		InternalError(c, "failed to load role")
		return
	}

	c.JSON(http.StatusOK, role)
}

// CreateRole adds a role to the fixed set.
func (h *HTTPHandler) CreateRole(c *gin.Context) {
	var req entity.RoleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	inUse, err := h.repo.RoleNameInUse(ctx, name, "")
	if err != nil {
		logrus.WithError(err).Error("failed to check role uniqueness")
		InternalError(c, "failed to create role")
		return
	}
	if inUse {
		BadRequest(c, ErrCodeNameExists, "the role already exists")
		return
	}

	role := &entity.DbRole{Name: name}
	if err := h.repo.CreateRole(ctx, role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			BadRequest(c, ErrCodeNameExists, "the role already exists")
			return
		}
		logrus.WithError(err).Error("failed to create role")
		InternalError(c, "failed to create role")
		return
	}

	c.JSON(http.StatusCreated, role)
}

// UpdateRole renames a role.
func (h *HTTPHandler) UpdateRole(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid role id")
		return
	}

	var req entity.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetRole(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeRoleNotFound, "role not found")
			return
		}
		logrus.WithError(err).Error("failed to load role for update")
		InternalError(c, "failed to update role")
		return
	}

	inUse, err := h.repo.RoleNameInUse(ctx, name, id)
	if err != nil {
		logrus.WithError(err).Error("failed to check role uniqueness")
		InternalError(c, "failed to update role")
		return
	}
	if inUse {
		BadRequest(c, ErrCodeNameExists, "the role name is already in use")
		return
	}

	if err := h.repo.UpdateRole(ctx, id, name); err != nil {
		logrus.WithError(err).Error("failed to update role")
		InternalError(c, "failed to update role")
		return
	}

	updated, err := h.repo.GetRole(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload role after update")
		InternalError(c, "failed to load updated role")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteRole removes a role. Roles still referenced by accounts are kept.
func (h *HTTPHandler) DeleteRole(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid role id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	referenced, err := h.repo.CountUsersWithRole(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to count role references")
		InternalError(c, "failed to delete role")
		return
	}
	if referenced > 0 {
		BadRequest(c, ErrCodeRoleReferenced, "role is still assigned to users")
		return
	}

	if err := h.repo.DeleteRole(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeRoleNotFound, "role not found")
			return
		}
		logrus.WithError(err).Error("failed to delete role")
		InternalError(c, "failed to delete role")
		return
	}

	c.Status(http.StatusNoContent)
}
