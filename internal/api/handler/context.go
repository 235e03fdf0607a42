package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both a user id and a
// role must be present (presence proves the middleware ran).
func ctxIdentity(c echo.Context) (userID uint, email, role string, err error) {
	userID, _ = c.Get("user_id").(uint)
	role, _ = c.Get("role").(string)
	if userID == 0 || role == "" {
		return 0, "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return userID, email, role, nil
}
