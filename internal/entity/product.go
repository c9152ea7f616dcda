package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fallback labels used when a product reference cannot be resolved.
const (
	NoCategoryLabel = "No Category"
	NoTypeLabel     = "No Type"
	NoSupplierLabel = "No Supplier"
)

// DbProduct represents a persisted product.
type DbProduct struct {
	ID            string         `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Name          string         `gorm:"column:name;type:varchar(255);uniqueIndex;not null" json:"name"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	Price         float64        `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	ImagePath     string         `gorm:"column:image_path;type:varchar(512)" json:"-"`
	CategoryID    string         `gorm:"column:category_id;type:varchar(36);index" json:"category_id"`
	Category      *DbCategory    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ProductTypeID string         `gorm:"column:product_type_id;type:varchar(36);index" json:"product_type_id"`
	ProductType   *DbProductType `gorm:"foreignKey:ProductTypeID" json:"product_type,omitempty"`
	StockID       string         `gorm:"column:stock_id;type:varchar(36);index" json:"stock_id"`
	Stock         *DbStock       `gorm:"foreignKey:StockID" json:"stock,omitempty"`
	SupplierID    string         `gorm:"column:supplier_id;type:varchar(36);index" json:"supplier_id"`
	Supplier      *DbSupplier    `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// TableName overrides default pluralised name.
func (DbProduct) TableName() string {
	return "products"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (p *DbProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductItem is the denormalised product view returned to clients. The
// referenced names replace foreign keys so list consumers avoid extra
// lookups.
type ProductItem struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Category      string    `json:"category"`
	ProductType   string    `json:"product_type"`
	Supplier      string    `json:"supplier"`
	ImageURL      string    `json:"image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProductQuery supports listing products with pagination.
type ProductQuery struct {
	BaseParams
	CategoryID string `json:"category_id" form:"category_id" query:"category_id"`
	Keyword    string `json:"keyword" form:"keyword" query:"keyword"`
}

type ProductCreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	CategoryID    string  `json:"category_id" binding:"required"`
	ProductTypeID string  `json:"product_type_id" binding:"required"`
	StockID       string  `json:"stock_id" binding:"required"`
	SupplierID    string  `json:"supplier_id" binding:"required"`
}

type ProductUpdateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	CategoryID    string  `json:"category_id" binding:"required"`
	ProductTypeID string  `json:"product_type_id" binding:"required"`
	StockID       string  `json:"stock_id" binding:"required"`
	SupplierID    string  `json:"supplier_id" binding:"required"`
}

type ProductListResponse struct {
	Products []ProductItem `json:"products"`
	Meta     *Meta         `json:"meta"`
}
