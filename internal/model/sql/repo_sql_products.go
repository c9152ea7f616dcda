package sql

import (
	"context"
	"fmt"
	"strings"

	"inventory/internal/entity"

	"gorm.io/gorm"
)

// CreateProduct persists a new product.
func (r *GormRepository) CreateProduct(ctx context.Context, product *entity.DbProduct) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if product == nil {
		return fmt.Errorf("product is nil")
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct updates an existing product entry.
func (r *GormRepository) UpdateProduct(ctx context.Context, id string, updates entity.Updates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid product id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbProduct{}).Where("id = ?", id).Updates(updates).Error
}

// GetProduct loads a product with its references resolved.
func (r *GormRepository) GetProduct(ctx context.Context, id string) (*entity.DbProduct, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return nil, fmt.Errorf("invalid product id")
	}
	var product entity.DbProduct
	if err := r.db.WithContext(ctx).
		Preload("Category").Preload("ProductType").Preload("Stock").Preload("Supplier").
		Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns paginated products with their references resolved.
func (r *GormRepository) ListProducts(ctx context.Context, params *entity.ProductQuery) ([]entity.DbProduct, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbProduct{})
	if params != nil {
		if trimmed := strings.TrimSpace(params.CategoryID); trimmed != "" {
			query = query.Where("category_id = ?", trimmed)
		}
		if keyword := strings.TrimSpace(params.Keyword); keyword != "" {
			kw := "%" + strings.ToLower(keyword) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", kw, kw)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page := 1
	pageSize := 20
	if params != nil {
		if params.Page > 0 {
			page = int(params.Page)
		}
		if params.PageSize > 0 {
			pageSize = int(params.PageSize)
		}
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}

	var products []entity.DbProduct
	if err := query.
		Preload("Category").Preload("ProductType").Preload("Stock").Preload("Supplier").
		Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&products).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, pageSize)
	return products, meta, nil
}

// DeleteProduct removes a product by ID.
func (r *GormRepository) DeleteProduct(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid product id")
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DbProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ProductNameInUse reports whether another product already owns the name.
func (r *GormRepository) ProductNameInUse(ctx context.Context, name, excludeID string) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("repository not initialised")
	}
	query := r.db.WithContext(ctx).Model(&entity.DbProduct{}).Where("name = ?", strings.TrimSpace(name))
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
