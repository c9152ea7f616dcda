package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DbProductType represents a persisted product type.
type DbProductType struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

// TableName overrides default pluralised name.
func (DbProductType) TableName() string {
	return "product_types"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (t *DbProductType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type ProductTypeCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type ProductTypeUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type ProductTypeListResponse struct {
	ProductTypes []DbProductType `json:"product_types"`
}
