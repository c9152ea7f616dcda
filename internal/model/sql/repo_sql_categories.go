package sql

import (
	"context"
	"fmt"
	"strings"

	"inventory/internal/entity"

	"gorm.io/gorm"
)

// CreateCategory persists a new category.
func (r *GormRepository) CreateCategory(ctx context.Context, category *entity.DbCategory) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if category == nil {
		return fmt.Errorf("category is nil")
	}
	return r.db.WithContext(ctx).Create(category).Error
}

// UpdateCategory renames an existing category.
func (r *GormRepository) UpdateCategory(ctx context.Context, id string, name string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid category id")
	}
	return r.db.WithContext(ctx).Model(&entity.DbCategory{}).Where("id = ?", id).
		Update("name", strings.TrimSpace(name)).Error
}

// GetCategory loads a category by ID.
func (r *GormRepository) GetCategory(ctx context.Context, id string) (*entity.DbCategory, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return nil, fmt.Errorf("invalid category id")
	}
	var category entity.DbCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns all categories.
func (r *GormRepository) ListCategories(ctx context.Context) ([]entity.DbCategory, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var categories []entity.DbCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// DeleteCategory removes a category by ID.
func (r *GormRepository) DeleteCategory(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == "" {
		return fmt.Errorf("invalid category id")
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.DbCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
