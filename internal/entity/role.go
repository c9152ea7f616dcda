package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// RoleAdmin and RoleUser are seeded at startup and referenced by the
	// authorization middleware.
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// DbRole represents a persisted role.
type DbRole struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(20);uniqueIndex;not null" json:"name"`
}

// TableName overrides default pluralised name.
func (DbRole) TableName() string {
	return "roles"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (r *DbRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type RoleCreateRequest struct {
	Name string `json:"name" binding:"required,min=3,max=20"`
}

type RoleUpdateRequest struct {
	Name string `json:"name" binding:"required,min=3,max=20"`
}

type RoleListResponse struct {
	Roles []DbRole `json:"roles"`
}
