package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/api/metrics"
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

// EventPublisher is the interface the services use to enqueue audit events.
type EventPublisher interface {
	Enqueue(event ports.OrderEventInput)
}

// CheckoutService turns the caller's cart into an order. The four writes
// (order, item snapshots, stock decrement, cart clearing) happen inside a
// single repository transaction.
type CheckoutService struct {
	orders         ports.OrderRepository
	events         EventPublisher
	defaultCountry string
	logger         zerolog.Logger
}

func NewCheckoutService(orders ports.OrderRepository, events EventPublisher, defaultCountry string, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{orders: orders, events: events, defaultCountry: defaultCountry, logger: logger}
}

func (s *CheckoutService) Checkout(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	addr := input.Address
	if addr.Street == "" || addr.City == "" || addr.ZipCode == "" {
		metrics.CheckoutFailuresTotal.WithLabelValues("invalid_address").Inc()
		return nil, domain.ErrAddressIncomplete
	}
	if addr.Country == "" {
		addr.Country = s.defaultCountry
	}

	order, err := s.orders.PlaceOrder(ctx, ports.PlaceOrderInput{
		UserID:        input.UserID,
		Address:       addr,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		metrics.CheckoutFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		s.logger.Warn().Err(err).Uint("user_id", input.UserID).Msg("checkout failed")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(order.PaymentMethod).Inc()
	s.events.Enqueue(ports.OrderEventInput{
		OrderID:   order.ID,
		Status:    string(order.Status),
		Actor:     input.ActorEmail,
		Timestamp: time.Now().UTC(),
	})

	s.logger.Info().
		Uint("order_id", order.ID).
		Uint("user_id", input.UserID).
		Float64("total", order.Total).
		Msg("order placed")

	return &ports.CheckoutResult{
		OrderID:   order.ID,
		Total:     order.Total,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}, nil
}

func failureReason(err error) string {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrCartEmpty):
		return "empty_cart"
	case errors.As(err, &stockErr):
		return "insufficient_stock"
	default:
		return "internal"
	}
}
