package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository persists products and categories in PostgreSQL.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListProducts returns a page of products matching filter and the total count.
func (r *CatalogRepository) ListProducts(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&productRecord{})

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		query = query.Where("products.name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []productRecord
	offset := (filter.Page - 1) * filter.Limit
	err := query.Preload("Category").
		Order("products.created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	products := make([]*domain.Product, len(records))
	for i := range records {
		products[i] = records[i].toDomain()
	}
	return products, total, nil
}

func (r *CatalogRepository) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	var record productRecord
	err := r.db.WithContext(ctx).Preload("Category").First(&record, "products.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var category categoryRecord
	if err := r.db.WithContext(ctx).First(&category, "id = ?", p.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	record := productRecord{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		CategoryID:  p.CategoryID,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	return r.GetProduct(ctx, record.ID)
}

// UpdateProduct applies a partial update; nil fields are left untouched.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, id uint, update ports.ProductUpdate) (*domain.Product, error) {
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	if update.CategoryID != nil {
		var category categoryRecord
		if err := r.db.WithContext(ctx).First(&category, "id = ?", *update.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrCategoryNotFound
			}
			return nil, err
		}
		record.CategoryID = *update.CategoryID
	}
	if update.Name != nil {
		record.Name = *update.Name
	}
	if update.Description != nil {
		record.Description = *update.Description
	}
	if update.Price != nil {
		record.Price = *update.Price
	}
	if update.Images != nil {
		record.Images = update.Images
	}
	if update.Stock != nil {
		record.Stock = *update.Stock
	}
	if update.Sizes != nil {
		record.Sizes = update.Sizes
	}

	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return r.GetProduct(ctx, id)
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&productRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, len(records))
	for i := range records {
		categories[i] = records[i].toDomain()
	}
	return categories, nil
}
