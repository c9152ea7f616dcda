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

// ListProducts returns paginated products with referenced names resolved.
func (h *HTTPHandler) ListProducts(c *gin.Context) {
	var query entity.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}
	if query.PageSize > 100 {
		query.PageSize = 100
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	products, meta, err := h.repo.ListProducts(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list products")
		InternalError(c, "failed to load products")
		return
	}

	response := entity.ProductListResponse{
		Products: make([]entity.ProductItem, 0, len(products)),
		Meta:     meta,
	}
	for idx := range products {
		response.Products = append(response.Products, h.makeProductItem(&products[idx]))
	}

	c.JSON(http.StatusOK, response)
}

// GetProduct returns a single product by id.
func (h *HTTPHandler) GetProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	product, err := h.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductNotFound, "product not found")
			return
		}
		logrus.WithError(err).Error("failed to load product")
		InternalError(c, "failed to load product")
		return
	}

	c.JSON(http.StatusOK, h.makeProductItem(product))
}

// CreateProduct creates a product after validating the name is unique and
// every referenced entity exists.
func (h *HTTPHandler) CreateProduct(c *gin.Context) {
	var req entity.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	inUse, err := h.repo.ProductNameInUse(ctx, name, "")
	if err != nil {
		logrus.WithError(err).Error("failed to check product uniqueness")
		InternalError(c, "failed to create product")
		return
	}
	if inUse {
		BadRequest(c, ErrCodeNameExists, "the product name is already in use")
		return
	}

	if !h.validateProductRefs(c, ctx, req.CategoryID, req.ProductTypeID, req.StockID, req.SupplierID) {
		return
	}

	product := &entity.DbProduct{
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		ProductTypeID: req.ProductTypeID,
		StockID:       req.StockID,
		SupplierID:    req.SupplierID,
	}

	if err := h.repo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			BadRequest(c, ErrCodeNameExists, "the product name is already in use")
			return
		}
		logrus.WithError(err).Error("failed to create product")
		InternalError(c, "failed to create product")
		return
	}

	created, err := h.repo.GetProduct(ctx, product.ID)
	if err != nil {
		logrus.WithError(err).Error("failed to reload product after create")
		InternalError(c, "failed to load created product")
		return
	}

	c.JSON(http.StatusCreated, h.makeProductItem(created))
}

// UpdateProduct replaces the mutable fields of a product.
func (h *HTTPHandler) UpdateProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product id")
		return
	}

	var req entity.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductNotFound, "product not found")
			return
		}
		logrus.WithError(err).Error("failed to load product for update")
		InternalError(c, "failed to update product")
		return
	}

	inUse, err := h.repo.ProductNameInUse(ctx, name, id)
	if err != nil {
		logrus.WithError(err).Error("failed to check product uniqueness")
		InternalError(c, "failed to update product")
		return
	}
	if inUse {
		BadRequest(c, ErrCodeNameExists, "product name is already in use")
		return
	}

	if !h.validateProductRefs(c, ctx, req.CategoryID, req.ProductTypeID, req.StockID, req.SupplierID) {
		return
	}

	updates := entity.Updates{
		"name":            name,
		"description":     strings.TrimSpace(req.Description),
		"price":           req.Price,
		"category_id":     req.CategoryID,
		"product_type_id": req.ProductTypeID,
		"stock_id":        req.StockID,
		"supplier_id":     req.SupplierID,
	}

	if err := h.repo.UpdateProduct(ctx, id, updates); err != nil {
		logrus.WithError(err).Error("failed to update product")
		InternalError(c, "failed to update product")
		return
	}

	updated, err := h.repo.GetProduct(ctx, id)
	if err != nil {
		logrus.WithError(err).Error("failed to reload product after update")
		InternalError(c, "failed to load updated product")
		return
	}

	c.JSON(http.StatusOK, h.makeProductItem(updated))
}

// DeleteProduct removes a product by id.
func (h *HTTPHandler) DeleteProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		BadRequest(c, ErrCodeInvalidRequest, "invalid product id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeProductNotFound, "product not found")
			return
		}
		logrus.WithError(err).Error("failed to delete product")
		InternalError(c, "failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

// validateProductRefs checks every referenced entity exists, writing the
// 4xx response itself when one does not.
func (h *HTTPHandler) validateProductRefs(c *gin.Context, ctx context.Context, categoryID, productTypeID, stockID, supplierID string) bool {
	if _, err := h.repo.GetCategory(ctx, categoryID); err != nil {
		h.refFailure(c, err, ErrCodeCategoryNotFound, "category not found")
		return false
	}
	if _, err := h.repo.GetProductType(ctx, productTypeID); err != nil {
		h.refFailure(c, err, ErrCodeProductTypeNotFound, "product type not found")
		return false
	}
	if _, err := h.repo.GetStock(ctx, stockID); err != nil {
		h.refFailure(c, err, ErrCodeStockNotFound, "stock not found")
		return false
	}
	if _, err := h.repo.GetSupplier(ctx, supplierID); err != nil {
		h.refFailure(c, err, ErrCodeSupplierNotFound, "supplier not found")
		return false
	}
	return true
}

func (h *HTTPHandler) refFailure(c *gin.Context, err error, code, message string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		BadRequest(c, code, message)
		return
	}
	logrus.WithError(err).Error("failed to resolve product reference")
	InternalError(c, "failed to resolve product reference")
}

// makeProductItem denormalises a product row for clients, substituting
// placeholder labels for unresolved references.
func (h *HTTPHandler) makeProductItem(product *entity.DbProduct) entity.ProductItem {
	if product == nil {
		return entity.ProductItem{}
	}
	item := entity.ProductItem{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    entity.NoCategoryLabel,
		ProductType: entity.NoTypeLabel,
		Supplier:    entity.NoSupplierLabel,
		ImageURL:    h.publicURL(product.ImagePath),
		CreatedAt:   product.CreatedAt,
	}
	if product.Category != nil {
		item.Category = product.Category.Name
	}
	if product.ProductType != nil {
		item.ProductType = product.ProductType.Name
	}
	if product.Stock != nil {
		item.StockQuantity = product.Stock.Quantity
	}
	if product.Supplier != nil {
		item.Supplier = product.Supplier.Name
	}
	return item
}
