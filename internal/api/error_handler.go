package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/solestore/storefront-api/internal/core/domain"
	"github.com/solestore/storefront-api/internal/core/service"
)

type errorBody struct {
	Error string `json:"error"`
}

// newErrorHandler maps domain errors to HTTP statuses. Handlers return
// domain errors as-is; only a handful of flows map statuses inline.
func newErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, errorBody{Error: msg})
			return
		}

		status := http.StatusInternalServerError
		var stockErr *domain.InsufficientStockError

		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			status = http.StatusUnauthorized
		case errors.Is(err, domain.ErrUserExists):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrProductNotFound),
			errors.Is(err, domain.ErrCategoryNotFound),
			errors.Is(err, domain.ErrCartItemNotFound),
			errors.Is(err, domain.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrCartEmpty),
			errors.Is(err, domain.ErrAddressIncomplete),
			errors.Is(err, domain.ErrInvalidQuantity),
			errors.Is(err, service.ErrInvalidProduct),
			errors.As(err, &stockErr):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrInvalidTransition):
			status = http.StatusUnprocessableEntity
		}

		if status == http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
			_ = c.JSON(status, errorBody{Error: "internal server error"})
			return
		}

		_ = c.JSON(status, errorBody{Error: err.Error()})
	}
}
