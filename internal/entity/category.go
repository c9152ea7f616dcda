package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DbCategory represents a persisted product category.
type DbCategory struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
}

// TableName overrides default pluralised name.
func (DbCategory) TableName() string {
	return "categories"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (c *DbCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryUpdateRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryListResponse struct {
	Categories []DbCategory `json:"categories"`
}
