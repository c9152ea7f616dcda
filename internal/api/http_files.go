package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"inventory/internal/entity"
	"inventory/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxImageUploadBytes = 5 << 20

var allowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := h.storagePublicBase
	if base == "" {
		base = "/files"
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(trimmed, "/"))
}

// UploadProductImage stores an image for an existing product and records
// its path on the product row.
func (h *HTTPHandler) UploadProductImage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product id")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "an image file is required")
		return
	}
	if fileHeader.Size > maxImageUploadBytes {
		BadRequest(c, ErrCodeInvalidRequest, "image exceeds the 5MB limit")
		return
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !allowedImageExtensions[ext] {
		BadRequest(c, ErrCodeInvalidRequest, "unsupported image format")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	product, err := h.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductNotFound, "product not found")
			return
		}
		logrus.WithError(err).Error("failed to load product for image upload")
		InternalError(c, "failed to upload image")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes+1))
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded image")
		InternalError(c, "failed to upload image")
		return
	}
	if len(data) > maxImageUploadBytes {
		BadRequest(c, ErrCodeInvalidRequest, "image exceeds the 5MB limit")
		return
	}

	storedPath, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:  "products",
		Extension: ext,
		BaseName:  product.ID,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to store product image")
		InternalError(c, "failed to upload image")
		return
	}

	if err := h.repo.UpdateProduct(ctx, id, entity.Updates{"image_path": storedPath}); err != nil {
		logrus.WithError(err).Error("failed to record product image path")
		InternalError(c, "failed to upload image")
		return
	}

	updated, err := h.repo.GetProduct(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload product after image upload")
		InternalError(c, "failed to load updated product")
		return
	}

	c.JSON(http.StatusOK, h.makeProductItem(updated))
}
