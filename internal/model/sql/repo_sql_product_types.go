package sql

import (
	"context"
	"fmt"

	"inventory/internal/entity"

	"gorm.io/gorm"
)

// CreateProductType persists a new product type.
func (r *GormRepository) CreateProductType(ctx context.Context, productType *entity.DbProductType) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if productType == nil {
		return fmt.Errorf("product type is nil")
	}
	return r.db.WithContext(ctx).Create(productType).Error
}

// UpdateProductType updates an existing product type entry.
func (r *GormRepository) UpdateProductType(ctx context.Context, id string, updates entity.Updates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid product type id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbProductType{}).Where("id = ?", id).Updates(updates).Error
}

// GetProductType loads a product type by ID.
func (r *GormRepository) GetProductType(ctx context.Context, id string) (*entity.DbProductType, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return nil, fmt.Errorf("invalid product type id")
	}
	var productType entity.DbProductType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&productType).Error; err != nil {
		return nil, err
	}
	return &productType, nil
}

// ListProductTypes returns all product types.
func (r *GormRepository) ListProductTypes(ctx context.Context) ([]entity.DbProductType, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var productTypes []entity.DbProductType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&productTypes).Error; err != nil {
		return nil, err
	}
	return productTypes, nil
}

// DeleteProductType removes a product type by ID.
func (r *GormRepository) DeleteProductType(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid product type id")
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DbProductType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
