package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/starsky/backend/internal/api/metrics"
	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/service"
)

// principalKey is the echo context key the verified principal is stored under.
const principalKey = "principal"

// Auth validates the bearer token and injects the principal into context.
// Verification failures stop the request with 401 before any handler runs.
func Auth(tokens *service.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// GetPrincipal extracts the principal stored by Auth. ok=false means the
// middleware did not run for this route.
func GetPrincipal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
