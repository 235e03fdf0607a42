package ports

import (
	"context"
	"time"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// ShippingAddressInput holds the address fields submitted at checkout.
// Matching against existing addresses is exact-string (street, city, zip).
type ShippingAddressInput struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// PlaceOrderInput is the unit of work handed to the repository. The whole
// flow (stock check, address resolution, order + item writes, stock
// decrement, cart clearing) runs inside one database transaction.
type PlaceOrderInput struct {
	UserID        uint
	Address       ShippingAddressInput
	PaymentMethod string
}

// CheckoutInput carries the checkout request plus the acting identity.
type CheckoutInput struct {
	UserID        uint
	ActorEmail    string
	Address       ShippingAddressInput
	PaymentMethod string
}

// CheckoutResult is returned by a successful checkout.
type CheckoutResult struct {
	OrderID   uint
	Total     float64
	Status    string
	CreatedAt time.Time
}

// CheckoutService places an order from the caller's cart.
type CheckoutService interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

// ListOrdersFilter scopes order listings. A zero UserID means no filter
// (admin view).
type ListOrdersFilter struct {
	UserID uint
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// PlaceOrder atomically creates the order with item snapshots,
	// decrements stock, and clears the user's cart.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error
}

// ListOrdersInput carries the caller identity for the orders listing.
type ListOrdersInput struct {
	UserID uint
	Role   string
}

// UpdateOrderStatusInput carries an admin-requested status transition.
type UpdateOrderStatusInput struct {
	OrderID    uint
	Status     string
	ActorEmail string
}

// OrderService defines order listing and admin status management.
type OrderService interface {
	ListOrders(ctx context.Context, input ListOrdersInput) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, input UpdateOrderStatusInput) (*domain.Order, error)
}
