package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/api/metrics"
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

type auditService struct {
	repo ports.OrderEventRepository
	log  zerolog.Logger
}

// NewAuditService returns the OrderEventSink that persists order audit rows.
func NewAuditService(repo ports.OrderEventRepository, log zerolog.Logger) ports.OrderEventSink {
	return &auditService{repo: repo, log: log}
}

// Process persists a single order audit event. Audit rows are best-effort:
// a failure here never affects the order itself.
func (s *auditService) Process(ctx context.Context, in ports.OrderEventInput) error {
	event := &domain.OrderEvent{
		OrderID:   in.OrderID,
		Status:    domain.OrderStatus(in.Status),
		Actor:     in.Actor,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process order event: %w", err)
	}

	metrics.OrderEventsProcessedTotal.WithLabelValues(in.Status).Inc()
	s.log.Debug().
		Uint("order_id", in.OrderID).
		Str("status", in.Status).
		Str("actor", in.Actor).
		Msg("order event recorded")

	return nil
}
