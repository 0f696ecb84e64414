package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/core/domain"
)

// RoleGuard enforces role-based access control. Any role outside the allowed
// set, including an unresolvable role claim, gets 403. An empty set only
// requires an authenticated principal.
func RoleGuard(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !principal.HasAnyRole(allowed...) {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
