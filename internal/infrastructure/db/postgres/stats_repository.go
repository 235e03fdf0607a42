package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

var _ ports.StatsRepository = (*StatsRepository)(nil)

// StatsRepository runs the aggregation queries behind the admin dashboard.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&orderRecord{}).Count(&count).Error
	return count, err
}

// SumRevenue totals all non-cancelled orders.
func (r *StatsRepository) SumRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status <> ?", string(domain.StatusCancelled)).
		Scan(&revenue).Error
	return revenue, err
}

func (r *StatsRepository) CountUsersByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}

func (r *StatsRepository) RecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	var records []orderRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(records))
	for i := range records {
		orders[i] = records[i].toDomain()
	}
	return orders, nil
}

// TopProducts ranks products by total units across all order items, then
// loads the product rows for the winners.
func (r *StatsRepository) TopProducts(ctx context.Context, limit int) ([]ports.TopProduct, error) {
	type row struct {
		ProductID uint
		Units     int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&orderItemRecord{}).
		Select("product_id, SUM(quantity) AS units").
		Group("product_id").
		Order("units DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	top := make([]ports.TopProduct, 0, len(rows))
	for _, row := range rows {
		var record productRecord
		err := r.db.WithContext(ctx).Preload("Category").First(&record, "products.id = ?", row.ProductID).Error
		if err != nil {
			// product deleted since the sale; skip rather than fail the page
			continue
		}
		top = append(top, ports.TopProduct{Product: record.toDomain(), UnitsSold: row.Units})
	}
	return top, nil
}

func (r *StatsRepository) OrdersSince(ctx context.Context, since time.Time) ([]*domain.Order, error) {
	var records []orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items.Product.Category").
		Where("status <> ? AND created_at >= ?", string(domain.StatusCancelled), since).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(records))
	for i := range records {
		orders[i] = records[i].toDomain()
	}
	return orders, nil
}
