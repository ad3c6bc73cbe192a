package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopforge/commerce-api/internal/api/middleware"
)

// ctxUserID extracts the user identity injected by the Auth middleware
// and fast-fails before any service call. An empty user_id means the
// middleware did not run on this route; reject rather than proceed with
// an anonymous caller.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
