package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

var _ ports.OrderEventRepository = (*OrderEventRepository)(nil)

// OrderEventRepository persists order audit rows.
type OrderEventRepository struct {
	db *gorm.DB
}

func NewOrderEventRepository(db *gorm.DB) *OrderEventRepository {
	return &OrderEventRepository{db: db}
}

func (r *OrderEventRepository) Insert(ctx context.Context, event *domain.OrderEvent) error {
	record := orderEventRecord{
		OrderID:   event.OrderID,
		Status:    string(event.Status),
		Actor:     event.Actor,
		Timestamp: event.Timestamp.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}
	return nil
}
