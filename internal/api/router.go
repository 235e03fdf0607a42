package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/solestore/storefront-api/internal/api/handler"
	"github.com/solestore/storefront-api/internal/api/middleware"
	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/service"
	"github.com/solestore/storefront-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/solestore/storefront-api/internal/infrastructure/db/redis"
	"github.com/solestore/storefront-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, events service.EventPublisher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = newErrorHandler(log)

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	catalogRepo := postgres.NewCatalogRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	cache := redisinfra.NewCache(rdb)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(catalogRepo, log)
	cartService := service.NewCartService(cartRepo, catalogRepo, log)
	checkoutService := service.NewCheckoutService(orderRepo, events, cfg.DefaultCountry, log)
	orderService := service.NewOrderService(orderRepo, events, log)
	dashboardService := service.NewDashboardService(statsRepo, cache, cfg.StatsCacheTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashboardHandler := handler.NewDashboardHandler(catalogService, orderService, dashboardService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Health probes and operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Live)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Ready) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	v1 := e.Group("/v1")

	// --- Public catalog ---
	v1.GET("/products", catalogHandler.ListProducts)
	v1.GET("/products/:id", catalogHandler.GetProduct)
	v1.GET("/categories", catalogHandler.ListCategories)

	// --- Authenticated shopping routes ---
	shop := v1.Group("", authMiddleware)
	shop.GET("/cart", cartHandler.List)
	shop.POST("/cart", cartHandler.Add)
	shop.PATCH("/cart/:id", cartHandler.UpdateQuantity)
	shop.DELETE("/cart/:id", cartHandler.Remove)
	shop.POST("/checkout", checkoutHandler.Checkout)
	shop.GET("/orders", orderHandler.List)

	// --- Admin dashboard ---
	dash := v1.Group("/dashboard", authMiddleware, middleware.RequireRole(domain.RoleAdmin))
	dash.GET("/products", catalogHandler.ListProducts)
	dash.GET("/products/:id", catalogHandler.GetProduct)
	dash.POST("/products", dashboardHandler.CreateProduct)
	dash.PATCH("/products/:id", dashboardHandler.UpdateProduct)
	dash.DELETE("/products/:id", dashboardHandler.DeleteProduct)
	dash.GET("/orders", dashboardHandler.ListOrders)
	dash.PATCH("/orders/:id", dashboardHandler.UpdateOrderStatus)
	dash.GET("/stats", dashboardHandler.Stats)
	dash.GET("/analytics", dashboardHandler.Analytics)

	return e
}
