package domain

import (
	"errors"
	"time"
)

var ErrCartItemNotFound = errors.New("cart item not found")
var ErrCartEmpty = errors.New("cart is empty")
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// CartItem is one (product, size, quantity) line owned by a user.
// The (user, product, size) triple is unique; adding the same pair again
// merges into the existing line.
type CartItem struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
