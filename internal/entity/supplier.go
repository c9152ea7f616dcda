package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DbSupplier represents a persisted supplier.
type DbSupplier struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Email     string    `gorm:"column:email;type:varchar(255)" json:"email"`
}

// TableName overrides default pluralised name.
func (DbSupplier) TableName() string {
	return "suppliers"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *DbSupplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SupplierCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type SupplierUpdateRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type SupplierListResponse struct {
	Suppliers []DbSupplier `json:"suppliers"`
}
