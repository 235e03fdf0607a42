package ports

import (
	"context"
	"time"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// OrderEventInput is the DTO handed to the audit pipeline when an order is
// created or transitions status.
type OrderEventInput struct {
	OrderID   uint
	Status    string
	Actor     string
	Timestamp time.Time
}

// OrderEventSink consumes order events dequeued by the dispatcher.
type OrderEventSink interface {
	Process(ctx context.Context, event OrderEventInput) error
}

// OrderEventRepository persists audit rows for order status changes.
type OrderEventRepository interface {
	Insert(ctx context.Context, event *domain.OrderEvent) error
}
