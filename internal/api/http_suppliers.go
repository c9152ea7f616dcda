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

func (h *HTTPHandler) ListSuppliers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	suppliers, err := h.repo.ListSuppliers(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list suppliers")
		InternalError(c, "failed to load suppliers")
		return
	}

	c.JSON(http.StatusOK, entity.SupplierListResponse{Suppliers: suppliers})
}

func (h *HTTPHandler) GetSupplier(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid supplier id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	supplier, err := h.repo.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSupplierNotFound, "supplier not found")
			return
		}
		logrus.WithError(err).Error("failed to load supplier")
		InternalError(c, "failed to load supplier")
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *HTTPHandler) CreateSupplier(c *gin.Context) {
	var req entity.SupplierCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	supplier := &entity.DbSupplier{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if err := h.repo.CreateSupplier(ctx, supplier); err != nil {
		logrus.WithError(err).Error("failed to create supplier")
		InternalError(c, "failed to create supplier")
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

func (h *HTTPHandler) UpdateSupplier(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid supplier id")
		return
	}

	var req entity.SupplierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetSupplier(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSupplierNotFound, "supplier not found")
			return
		}
		logrus.WithError(err).Error("failed to load supplier for update")
		InternalError(c, "failed to update supplier")
		return
	}

	updates := entity.Updates{
		"name":  strings.TrimSpace(req.Name),
		"phone": strings.TrimSpace(req.Phone),
		"email": strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if err := h.repo.UpdateSupplier(ctx, id, updates); err != nil {
		logrus.WithError(err).Error("failed to update supplier")
		InternalError(c, "failed to update supplier")
		return
	}

	updated, err := h.repo.GetSupplier(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload supplier after update")
		InternalError(c, "failed to load updated supplier")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteSupplier(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid supplier id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteSupplier(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSupplierNotFound, "supplier not found")
			return
		}
		logrus.WithError(err).Error("failed to delete supplier")
		InternalError(c, "failed to delete supplier")
		return
	}

	c.Status(http.StatusNoContent)
}
