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

func (h *HTTPHandler) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list categories")
		InternalError(c, "failed to load categories")
		return
	}

	c.JSON(http.StatusOK, entity.CategoryListResponse{Categories: categories})
}

func (h *HTTPHandler) GetCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid category id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	category, err := h.repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeCategoryNotFound, "category not found")
			return
		}
		logrus.WithError(err).Error("failed to load category")
		InternalError(c, "failed to load category")
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *HTTPHandler) CreateCategory(c *gin.Context) {
	var req entity.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	category := &entity.DbCategory{Name: strings.TrimSpace(req.Name)}
	if err := h.repo.CreateCategory(ctx, category); err != nil {
		logrus.WithError(err).Error("failed to create category")
		InternalError(c, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *HTTPHandler) UpdateCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid category id")
		return
	}

	var req entity.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeCategoryNotFound, "category not found")
			return
		}
		logrus.WithError(err).Error("failed to load category for update")
		InternalError(c, "failed to update category")
		return
	}

	if err := h.repo.UpdateCategory(ctx, id, strings.TrimSpace(req.Name)); err != nil {
		logrus.WithError(err).Error("failed to update category")
		InternalError(c, "failed to update category")
		return
	}

	updated, err := h.repo.GetCategory(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload category after update")
		InternalError(c, "failed to load updated category")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid category id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeCategoryNotFound, "category not found")
			return
		}
		logrus.WithError(err).Error("failed to delete category")
		InternalError(c, "failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
