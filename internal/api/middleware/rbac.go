package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopforge/commerce-api/internal/api/metrics"
	"github.com/shopforge/commerce-api/internal/core/domain"
)

// RBAC permits the request only when the role claim attached by Auth is
// in the allow-set. It fails closed: no claim (Auth not mounted, or
// skipped) is treated the same as a disallowed role. It never re-checks
// token validity, so it must always be mounted after Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthFailuresTotal.WithLabelValues("forbidden_role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "Access denied. You do not have the required role.")
			}
			return next(c)
		}
	}
}
