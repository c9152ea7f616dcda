package sql

import (
	"context"
	"fmt"

	"inventory/internal/entity"

	"gorm.io/gorm"
)

// CreateSupplier persists a new supplier.
func (r *GormRepository) CreateSupplier(ctx context.Context, supplier *entity.DbSupplier) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if supplier == nil {
		return fmt.Errorf("supplier is nil")
	}
	return r.db.WithContext(ctx).Create(supplier).Error
}

// UpdateSupplier updates an existing supplier entry.
func (r *GormRepository) UpdateSupplier(ctx context.Context, id string, updates entity.Updates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid supplier id")
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbSupplier{}).Where("id = ?", id).Updates(updates).Error
}

// GetSupplier loads a supplier by ID.
func (r *GormRepository) GetSupplier(ctx context.Context, id string) (*entity.DbSupplier, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return nil, fmt.Errorf("invalid supplier id")
	}
	var supplier entity.DbSupplier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ListSuppliers returns all suppliers.
func (r *GormRepository) ListSuppliers(ctx context.Context) ([]entity.DbSupplier, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var suppliers []entity.DbSupplier
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// DeleteSupplier removes a supplier by ID.
func (r *GormRepository) DeleteSupplier(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid supplier id")
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DbSupplier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
