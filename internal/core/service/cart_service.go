package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

// CartService implements cart reads and mutations for the authenticated user.
type CartService struct {
	carts   ports.CartRepository
	catalog ports.CatalogRepository
	logger  zerolog.Logger
}

func NewCartService(carts ports.CartRepository, catalog ports.CatalogRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, catalog: catalog, logger: logger}
}

func (s *CartService) List(ctx context.Context, userID uint) ([]*domain.CartItem, error) {
	return s.carts.ListByUser(ctx, userID)
}

// Add puts (product, size, quantity) into the user's cart. Adding a
// (product, size) pair that is already present increments the existing
// line instead of creating a duplicate row.
func (s *CartService) Add(ctx context.Context, userID uint, input ports.AddCartItemInput) (*domain.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < input.Quantity {
		return nil, &domain.InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: input.Quantity,
			Available: product.Stock,
		}
	}

	existing, err := s.carts.FindByUserProductSize(ctx, userID, input.ProductID, input.Size)
	if err == nil {
		return s.carts.UpdateQuantity(ctx, existing.ID, existing.Quantity+input.Quantity)
	}
	if !errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, err
	}

	item := &domain.CartItem{
		UserID:    userID,
		ProductID: input.ProductID,
		Size:      input.Size,
		Quantity:  input.Quantity,
	}
	created, err := s.carts.Create(ctx, item)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Uint("user_id", userID).Uint("product_id", input.ProductID).Str("size", input.Size).Msg("cart item added")
	return created, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if item.Product != nil && item.Product.Stock < quantity {
		return nil, &domain.InsufficientStockError{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Requested: quantity,
			Available: item.Product.Stock,
		}
	}

	return s.carts.UpdateQuantity(ctx, itemID, quantity)
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	if _, err := s.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return s.carts.Delete(ctx, itemID)
}

// ownedItem fetches the item and hides other users' rows behind not-found.
func (s *CartService) ownedItem(ctx context.Context, userID, itemID uint) (*domain.CartItem, error) {
	item, err := s.carts.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, domain.ErrCartItemNotFound
	}
	return item, nil
}
