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

func (h *HTTPHandler) ListStocks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stocks, err := h.repo.ListStocks(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list stocks")
		InternalError(c, "failed to load stocks")
		return
	}

	c.JSON(http.StatusOK, entity.StockListResponse{Stocks: stocks})
}

func (h *HTTPHandler) GetStock(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid stock id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stock, err := h.repo.GetStock(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeStockNotFound, "stock not found")
			return
		}
		logrus.WithError(err).Error("failed to load stock")
		InternalError(c, "failed to load stock")
		return
	}

	c.JSON(http.StatusOK, stock)
}

func (h *HTTPHandler) CreateStock(c *gin.Context) {
	var req entity.StockCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stock := &entity.DbStock{Quantity: *req.Quantity}
	if err := h.repo.CreateStock(ctx, stock); err != nil {
		logrus.WithError(err).Error("failed to create stock")
		InternalError(c, "failed to create stock")
		return
	}

	c.JSON(http.StatusCreated, stock)
}

// UpdateStock sets the quantity. The row's updated_at then records the
// last stock movement.
func (h *HTTPHandler) UpdateStock(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid stock id")
		return
	}

	var req entity.StockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		BadRequest(c, ErrCodeInvalidRequest, "quantity must be zero or greater")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetStock(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeStockNotFound, "stock not found")
			return
		}
		logrus.WithError(err).Error("failed to load stock for update")
		InternalError(c, "failed to update stock")
		return
	}

	if err := h.repo.UpdateStock(ctx, id, *req.Quantity); err != nil {
		logrus.WithError(err).Error("failed to update stock")
		InternalError(c, "failed to update stock")
		return
	}

	updated, err := h.repo.GetStock(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload stock after update")
		InternalError(c, "failed to load updated stock")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteStock(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid stock id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteStock(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeStockNotFound, "stock not found")
			return
		}
		logrus.WithError(err).Error("failed to delete stock")
		InternalError(c, "failed to delete stock")
		return
	}

	c.Status(http.StatusNoContent)
}
