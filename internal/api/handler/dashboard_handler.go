package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solestore/storefront-api/internal/core/ports"
)

// DashboardHandler groups the admin-only endpoints: product management,
// order management, and the stats/analytics views.
type DashboardHandler struct {
	catalogService   ports.CatalogService
	orderService     ports.OrderService
	dashboardService ports.DashboardService
}

func NewDashboardHandler(
	catalogService ports.CatalogService,
	orderService ports.OrderService,
	dashboardService ports.DashboardService,
) *DashboardHandler {
	return &DashboardHandler{
		catalogService:   catalogService,
		orderService:     orderService,
		dashboardService: dashboardService,
	}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Sizes       []string `json:"sizes"`
	CategoryID  uint     `json:"category_id" validate:"required"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Images      []string `json:"images"`
	Stock       *int     `json:"stock"`
	Sizes       []string `json:"sizes"`
	CategoryID  *uint    `json:"category_id"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateProduct adds a product to the catalog.
//
// @Summary      Create product
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/dashboard/products [post]
func (h *DashboardHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalogService.CreateProduct(c.Request().Context(), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct partially updates a product. Absent fields are left untouched.
//
// @Summary      Update product
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product ID"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/dashboard/products/{id} [patch]
func (h *DashboardHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	product, err := h.catalogService.UpdateProduct(c.Request().Context(), id, ports.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog. Existing order items
// keep their snapshot of the product data.
//
// @Summary      Delete product
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/dashboard/products/{id} [delete]
func (h *DashboardHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

// ListOrders returns every order in the store, newest first.
//
// @Summary      List all orders
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/orders [get]
func (h *DashboardHandler) ListOrders(c echo.Context) error {
	_, _, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	orders, err := h.orderService.ListOrders(c.Request().Context(), ports.ListOrdersInput{Role: role})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus advances an order through its lifecycle. Illegal
// transitions are rejected with 422.
//
// @Summary      Update order status
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Order ID"
// @Param        body  body      updateOrderStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/dashboard/orders/{id} [patch]
func (h *DashboardHandler) UpdateOrderStatus(c echo.Context) error {
	_, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), ports.UpdateOrderStatusInput{
		OrderID:    id,
		Status:     req.Status,
		ActorEmail: email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Stats returns the admin overview counters, recent orders, and best sellers.
//
// @Summary      Dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Analytics returns sales aggregations over the last six months.
//
// @Summary      Dashboard analytics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardAnalytics
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/analytics [get]
func (h *DashboardHandler) Analytics(c echo.Context) error {
	analytics, err := h.dashboardService.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}
