package sql

import (
	"context"
	"fmt"

	"inventory/internal/entity"

	"gorm.io/gorm"
)

// CreateStock persists a new stock record.
func (r *GormRepository) CreateStock(ctx context.Context, stock *entity.DbStock) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if stock == nil {
		return fmt.Errorf("stock is nil")
	}
	return r.db.WithContext(ctx).Create(stock).Error
}

// UpdateStock sets the quantity of an existing stock record. GORM refreshes
// updated_at, which clients read as the last-movement timestamp.
func (r *GormRepository) UpdateStock(ctx context.Context, id string, quantity int) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid stock id")
	}
	return r.db.WithContext(ctx).Model(&entity.DbStock{}).Where("id = ?", id).
		Update("quantity", quantity).Error
}

// GetStock loads a stock record by ID.
func (r *GormRepository) GetStock(ctx context.Context, id string) (*entity.DbStock, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return nil, fmt.Errorf("invalid stock id")
	}
	var stock entity.DbStock
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// ListStocks returns all stock records.
func (r *GormRepository) ListStocks(ctx context.Context) ([]entity.DbStock, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var stocks []entity.DbStock
	if err := r.db.WithContext(ctx).Order("updated_at DESC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// DeleteStock removes a stock record by ID.
func (r *GormRepository) DeleteStock(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid stock id")
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DbStock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
