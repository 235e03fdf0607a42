package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var ErrInvalidProduct = errors.New("product requires a name, a positive price, and a category")

// CatalogService implements the public catalog reads and the admin product CRUD.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter ports.ListProductsFilter) (*ports.ListProductsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit != 0 {
		totalPages++
	}

	return &ports.ListProductsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Price <= 0 || input.CategoryID == 0 {
		return nil, ErrInvalidProduct
	}
	if input.Stock < 0 {
		input.Stock = 0
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Images:      input.Images,
		Stock:       input.Stock,
		Sizes:       input.Sizes,
		CategoryID:  input.CategoryID,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, update ports.ProductUpdate) (*domain.Product, error) {
	if update.Price != nil && *update.Price <= 0 {
		return nil, ErrInvalidProduct
	}
	if update.Stock != nil && *update.Stock < 0 {
		return nil, ErrInvalidProduct
	}

	updated, err := s.repo.UpdateProduct(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("product_id", id).Msg("product deleted")
	return nil
}
