package ports

import (
	"context"
	"errors"
	"time"

	"github.com/solestore/storefront-api/internal/core/domain"
)

// ErrCacheMiss is returned by StatsCache.Get when the key is absent. Any
// other error is a cache failure, not a miss.
var ErrCacheMiss = errors.New("cache miss")

// StatsCache abstracts the dashboard result cache (Redis).
type StatsCache interface {
	Get(ctx context.Context, key string, v any) error
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// TopProduct pairs a product with its total units sold.
type TopProduct struct {
	Product   *domain.Product `json:"product"`
	UnitsSold int64           `json:"total_sold"`
}

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	TotalProducts int64           `json:"total_products"`
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  float64         `json:"total_revenue"`
	TotalUsers    int64           `json:"total_users"`
	RecentOrders  []*domain.Order `json:"recent_orders"`
	TopProducts   []TopProduct    `json:"top_products"`
}

// MonthlySales is one month's aggregated order total.
type MonthlySales struct {
	Month string  `json:"month"`
	Sales float64 `json:"sales"`
}

// CategorySales is one category's aggregated line revenue.
type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// ProductSales is one product's aggregated units sold.
type ProductSales struct {
	Name  string `json:"name"`
	Sales int64  `json:"sales"`
}

// DashboardAnalytics aggregates non-cancelled orders from the last six months.
type DashboardAnalytics struct {
	SalesByMonth    []MonthlySales  `json:"sales_by_month"`
	SalesByCategory []CategorySales `json:"sales_by_category"`
	TopProducts     []ProductSales  `json:"top_products"`
}

// StatsRepository exposes the aggregation queries behind the dashboard.
// Revenue and analytics exclude cancelled orders.
type StatsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (float64, error)
	CountUsersByRole(ctx context.Context, role string) (int64, error)
	RecentOrders(ctx context.Context, limit int) ([]*domain.Order, error)
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)
	// OrdersSince returns non-cancelled orders created at or after since,
	// with item, product, and category snapshots loaded.
	OrdersSince(ctx context.Context, since time.Time) ([]*domain.Order, error)
}

// DashboardService computes the admin stats and analytics payloads.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	Analytics(ctx context.Context) (*DashboardAnalytics, error)
}
