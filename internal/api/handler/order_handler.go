package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solestore/storefront-api/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List returns the caller's orders, newest first. Admins see every order.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, _, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	orders, err := h.orderService.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
