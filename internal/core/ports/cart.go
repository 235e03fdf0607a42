package ports

import (
	"context"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// AddCartItemInput is the DTO passed from the transport layer to CartService.
type AddCartItemInput struct {
	ProductID uint
	Size      string
	Quantity  int
}

// CartRepository defines persistence operations for cart lines.
type CartRepository interface {
	// ListByUser returns the user's cart lines, newest first, with product
	// and category snapshots embedded.
	ListByUser(ctx context.Context, userID uint) ([]*domain.CartItem, error)
	Get(ctx context.Context, itemID uint) (*domain.CartItem, error)
	FindByUserProductSize(ctx context.Context, userID, productID uint, size string) (*domain.CartItem, error)
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID uint, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, itemID uint) error
}

// CartService defines cart use cases. All operations are scoped to the
// authenticated user; another user's item behaves as not found.
type CartService interface {
	List(ctx context.Context, userID uint) ([]*domain.CartItem, error)
	Add(ctx context.Context, userID uint, input AddCartItemInput) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID uint) error
}
