package ports

import (
	"context"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for the public listing.
type ListProductsFilter struct {
	CategorySlug string // optional: filter by category slug
	Search       string // optional: partial match on product name
	Page         int    // 1-based
	Limit        int    // max rows per page (capped at 100 by service)
}

// ProductInput carries all data needed to create a product.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Images      []string
	Stock       int
	Sizes       []string
	CategoryID  uint
}

// ProductUpdate is a partial update; nil fields are left untouched.
// Stock, when present, is an absolute set.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Images      []string
	Stock       *int
	Sizes       []string
	CategoryID  *uint
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Items      []*domain.Product `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// CatalogRepository defines persistence operations for products and categories.
type CatalogRepository interface {
	// ListProducts returns a page of products matching filter and the total count.
	ListProducts(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uint, update ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}

// CatalogService defines catalog use cases. The mutating operations are
// reachable through admin routes only.
type CatalogService interface {
	ListProducts(ctx context.Context, filter ListProductsFilter) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uint, update ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}
