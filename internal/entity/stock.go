package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DbStock represents a persisted stock record. UpdatedAt doubles as the
// last-movement timestamp and is set server-side on every write.
type DbStock struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
}

// TableName overrides default pluralised name.
func (DbStock) TableName() string {
	return "stocks"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (s *DbStock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type StockCreateRequest struct {
	// Pointer so an explicit zero survives the required check.
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

type StockUpdateRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

type StockListResponse struct {
	Stocks []DbStock `json:"stocks"`
}
