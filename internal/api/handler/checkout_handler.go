package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/ports"
)

type CheckoutHandler struct {
	checkoutService ports.CheckoutService
}

func NewCheckoutHandler(checkoutService ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

type checkoutAddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code" validate:"required"`
	Country string `json:"country"`
}

type checkoutRequest struct {
	Address       checkoutAddressRequest `json:"address" validate:"required"`
	PaymentMethod string                 `json:"payment_method"`
}

type checkoutResponse struct {
	OrderID uint    `json:"order_id"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
	Message string  `json:"message"`
}

// Checkout converts the caller's cart into an order. The order is created,
// stock decremented, and the cart cleared atomically.
//
// @Summary      Checkout
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkoutRequest  true  "Shipping address and payment method"
// @Success      201   {object}  checkoutResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.checkoutService.Checkout(c.Request().Context(), ports.CheckoutInput{
		UserID:     userID,
		ActorEmail: email,
		Address: ports.ShippingAddressInput{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		},
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		var stockErr *domain.InsufficientStockError
		switch {
		case errors.Is(err, domain.ErrCartEmpty):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "cart is empty"})
		case errors.Is(err, domain.ErrAddressIncomplete):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.As(err, &stockErr):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: stockErr.Error()})
		default:
			return err
		}
	}

	return c.JSON(http.StatusCreated, checkoutResponse{
		OrderID: result.OrderID,
		Total:   result.Total,
		Status:  result.Status,
		Message: "order placed",
	})
}
