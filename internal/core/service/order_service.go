package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

// OrderService lists orders and applies admin status transitions.
type OrderService struct {
	orders ports.OrderRepository
	events EventPublisher
	logger zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, events EventPublisher, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, events: events, logger: logger}
}

// ListOrders returns the caller's orders, or every order for admins,
// newest first.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) ([]*domain.Order, error) {
	filter := ports.ListOrdersFilter{UserID: input.UserID}
	if input.Role == domain.RoleAdmin {
		filter.UserID = 0
	}
	return s.orders.List(ctx, filter)
}

// UpdateStatus applies a state machine transition to an order. There are
// no automatic transitions; every change comes through here.
func (s *OrderService) UpdateStatus(ctx context.Context, input ports.UpdateOrderStatusInput) (*domain.Order, error) {
	next := domain.OrderStatus(input.Status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, input.Status)
	}

	order, err := s.orders.Get(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}

	s.events.Enqueue(ports.OrderEventInput{
		OrderID:   order.ID,
		Status:    string(next),
		Actor:     input.ActorEmail,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().
		Uint("order_id", order.ID).
		Str("from", string(order.Status)).
		Str("to", string(next)).
		Str("actor", input.ActorEmail).
		Msg("order status updated")

	order.Status = next
	return order, nil
}
