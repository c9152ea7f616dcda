package model

import (
	"context"

	"inventory/internal/entity"
)

// Repository defines the persistence operations used by the HTTP layer.
type Repository interface {
	// Users
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id string, updates entity.Updates) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id string) (*entity.DbUser, error)
	ListUsers(ctx context.Context, params *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error)
	DeleteUser(ctx context.Context, id string) error
	UserEmailInUse(ctx context.Context, email, excludeID string) (bool, error)

	// Roles
	CreateRole(ctx context.Context, role *entity.DbRole) error
	UpdateRole(ctx context.Context, id string, name string) error
	GetRole(ctx context.Context, id string) (*entity.DbRole, error)
	GetRoleByName(ctx context.Context, name string) (*entity.DbRole, error)
	ListRoles(ctx context.Context) ([]entity.DbRole, error)
	DeleteRole(ctx context.Context, id string) error
	RoleNameInUse(ctx context.Context, name, excludeID string) (bool, error)
	CountUsersWithRole(ctx context.Context, roleID string) (int64, error)

	// Products
	CreateProduct(ctx context.Context, product *entity.DbProduct) error
	UpdateProduct(ctx context.Context, id string, updates entity.Updates) error
	GetProduct(ctx context.Context, id string) (*entity.DbProduct, error)
	ListProducts(ctx context.Context, params *entity.ProductQuery) ([]entity.DbProduct, *entity.Meta, error)
	DeleteProduct(ctx context.Context, id string) error
	ProductNameInUse(ctx context.Context, name, excludeID string) (bool, error)

	// Categories
	CreateCategory(ctx context.Context, category *entity.DbCategory) error
	UpdateCategory(ctx context.Context, id string, name string) error
	GetCategory(ctx context.Context, id string) (*entity.DbCategory, error)
	ListCategories(ctx context.Context) ([]entity.DbCategory, error)
	DeleteCategory(ctx context.Context, id string) error

	// Suppliers
	CreateSupplier(ctx context.Context, supplier *entity.DbSupplier) error
	UpdateSupplier(ctx context.Context, id string, updates entity.Updates) error
	GetSupplier(ctx context.Context, id string) (*entity.DbSupplier, error)
	ListSuppliers(ctx context.Context) ([]entity.DbSupplier, error)
	DeleteSupplier(ctx context.Context, id string) error

	// Stocks
	CreateStock(ctx context.Context, stock *entity.DbStock) error
	UpdateStock(ctx context.Context, id string, quantity int) error
	GetStock(ctx context.Context, id string) (*entity.DbStock, error)
	ListStocks(ctx context.Context) ([]entity.DbStock, error)
	DeleteStock(ctx context.Context, id string) error

	// Product types
	CreateProductType(ctx context.Context, productType *entity.DbProductType) error
	UpdateProductType(ctx context.Context, id string, updates entity.Updates) error
	GetProductType(ctx context.Context, id string) (*entity.DbProductType, error)
	ListProductTypes(ctx context.Context) ([]entity.DbProductType, error)
	DeleteProductType(ctx context.Context, id string) error
}
