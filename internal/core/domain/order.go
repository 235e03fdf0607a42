package domain

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// validTransitions defines the allowed state machine transitions.
// CANCELLED is reachable from every non-terminal state; DELIVERED and
// CANCELLED are absorbing.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrAddressIncomplete = errors.New("shipping address is incomplete")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// InsufficientStockError reports the first cart line whose requested
// quantity exceeds the product's current stock. Checkout aborts as a whole
// on the first such line.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.Name, e.Requested, e.Available)
}

// Address is a shipping destination owned by a user. Addresses are
// de-duplicated by exact (street, city, zip) match before creation.
type Address struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is the aggregate created by checkout. Total is frozen at purchase
// time as the sum of line price times quantity.
type Order struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"user_id"`
	User          *User       `json:"user,omitempty"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	AddressID     uint        `json:"address_id"`
	Address       *Address    `json:"shipping_address,omitempty"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a purchased line. Price and size
// are copied at order creation so historical orders stay accurate when the
// product later changes.
type OrderItem struct {
	ID        uint     `json:"id"`
	OrderID   uint     `json:"order_id"`
	ProductID uint     `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Size      string   `json:"size"`
}

// OrderEvent is an audit record of a status applied to an order.
type OrderEvent struct {
	ID        uint        `json:"id"`
	OrderID   uint        `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
}
