package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopforge/commerce-api/internal/api/metrics"
	"github.com/shopforge/commerce-api/internal/core/token"
)

// Context keys under which the Auth middleware stores the verified claims.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth extracts the bearer token, verifies it, and injects the claims
// into the request context. An absent header (or one without the Bearer
// prefix) is 401; a present but unverifiable token is 400; a missing
// signing secret fails closed with 500. Nothing is attached to the
// context on any rejection path.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrMissingSecret) {
					return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error. Secret key not provided.")
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "Invalid token.")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, string(claims.Role))

			return next(c)
		}
	}
}
