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

func (h *HTTPHandler) ListProductTypes(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	productTypes, err := h.repo.ListProductTypes(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list product types")
		InternalError(c, "failed to load product types")
		return
	}

	c.JSON(http.StatusOK, entity.ProductTypeListResponse{ProductTypes: productTypes})
}

func (h *HTTPHandler) GetProductType(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product type id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	productType, err := h.repo.GetProductType(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductTypeNotFound, "product type not found")
			return
		}
		logrus.WithError(err).Error("failed to load product type")
		InternalError(c, "failed to load product type")
		return
	}

	c.JSON(http.StatusOK, productType)
}

func (h *HTTPHandler) CreateProductType(c *gin.Context) {
	var req entity.ProductTypeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	productType := &entity.DbProductType{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	}
	if req.IsActive != nil {
		productType.IsActive = *req.IsActive
	}

	if err := h.repo.CreateProductType(ctx, productType); err != nil {
		logrus.WithError(err).Error("failed to create product type")
		InternalError(c, "failed to create product type")
		return
	}

	c.JSON(http.StatusCreated, productType)
}

func (h *HTTPHandler) UpdateProductType(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product type id")
		return
	}

	var req entity.ProductTypeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetProductType(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductTypeNotFound, "product type not found")
			return
		}
		logrus.WithError(err).Error("failed to load product type for update")
		InternalError(c, "failed to update product type")
		return
	}

	updates := entity.Updates{
		"name":        strings.TrimSpace(req.Name),
		"description": strings.TrimSpace(req.Description),
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := h.repo.UpdateProductType(ctx, id, updates); err != nil {
		logrus.WithError(err).Error("failed to update product type")
		InternalError(c, "failed to update product type")
		return
	}

	updated, err := h.repo.GetProductType(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload product type after update")
		InternalError(c, "failed to load updated product type")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteProductType(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product type id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteProductType(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductTypeNotFound, "product type not found")
			return
		}
		logrus.WithError(err).Error("failed to delete product type")
		InternalError(c, "failed to delete product type")
		return
	}

	c.Status(http.StatusNoContent)
}
