package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/api/metrics"
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

const (
	statsCacheKey     = "dashboard:stats"
	analyticsCacheKey = "dashboard:analytics"

	recentOrdersLimit  = 5
	topProductsLimit   = 5
	analyticsTopLimit  = 10
	analyticsWindowMon = 6
)

// DashboardService assembles the admin stats and analytics payloads.
// Results are cached with a short TTL; a cache failure falls back to the
// database and is logged, never surfaced.
type DashboardService struct {
	stats  ports.StatsRepository
	cache  ports.StatsCache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewDashboardService(stats ports.StatsRepository, cache ports.StatsCache, ttl time.Duration, logger zerolog.Logger) *DashboardService {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardService{stats: stats, cache: cache, ttl: ttl, logger: logger}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	var cached ports.DashboardStats
	if s.cacheGet(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	totalProducts, err := s.stats.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.stats.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.stats.SumRevenue(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.stats.CountUsersByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	recent, err := s.stats.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	top, err := s.stats.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, err
	}

	result := &ports.DashboardStats{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
		TotalUsers:    totalUsers,
		RecentOrders:  recent,
		TopProducts:   top,
	}
	s.cacheSet(ctx, statsCacheKey, result)
	return result, nil
}

func (s *DashboardService) Analytics(ctx context.Context) (*ports.DashboardAnalytics, error) {
	var cached ports.DashboardAnalytics
	if s.cacheGet(ctx, analyticsCacheKey, &cached) {
		return &cached, nil
	}

	since := time.Now().UTC().AddDate(0, -analyticsWindowMon, 0)
	orders, err := s.stats.OrdersSince(ctx, since)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]float64)
	byCategory := make(map[string]float64)
	byProduct := make(map[string]int64)

	for _, order := range orders {
		month := order.CreatedAt.UTC().Format("2006-01")
		byMonth[month] += order.Total

		for _, item := range order.Items {
			if item.Product == nil {
				continue
			}
			if item.Product.Category != nil {
				byCategory[item.Product.Category.Name] += item.Price * float64(item.Quantity)
			}
			byProduct[item.Product.Name] += int64(item.Quantity)
		}
	}

	result := &ports.DashboardAnalytics{
		SalesByMonth:    sortedMonthlySales(byMonth),
		SalesByCategory: sortedCategorySales(byCategory),
		TopProducts:     topProductSales(byProduct, analyticsTopLimit),
	}
	s.cacheSet(ctx, analyticsCacheKey, result)
	return result, nil
}

func (s *DashboardService) cacheGet(ctx context.Context, key string, v any) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, v)
	if err == nil {
		metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
		return true
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
	}
	metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
	return false
}

func (s *DashboardService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache dashboard payload")
	}
}

func sortedMonthlySales(byMonth map[string]float64) []ports.MonthlySales {
	out := make([]ports.MonthlySales, 0, len(byMonth))
	for month, sales := range byMonth {
		out = append(out, ports.MonthlySales{Month: month, Sales: sales})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedCategorySales(byCategory map[string]float64) []ports.CategorySales {
	out := make([]ports.CategorySales, 0, len(byCategory))
	for category, sales := range byCategory {
		out = append(out, ports.CategorySales{Category: category, Sales: sales})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	return out
}

func topProductSales(byProduct map[string]int64, limit int) []ports.ProductSales {
	out := make([]ports.ProductSales, 0, len(byProduct))
	for name, units := range byProduct {
		out = append(out, ports.ProductSales{Name: name, Sales: units})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sales != out[j].Sales {
			return out[i].Sales > out[j].Sales
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
