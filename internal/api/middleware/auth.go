package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/handler"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/metrics"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

// Authenticate validates HTTP Basic credentials and injects the principal
// into context. Requests without an Authorization header pass through
// anonymously; a header that is present but wrong fails with 401 on every
// route, public ones included.
func Authenticate(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}

			email, password, ok := c.Request().BasicAuth()
			if !ok {
				metrics.AuthAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := auth.Authenticate(c.Request().Context(), email, password)
			metrics.AuthAttemptsTotal.WithLabelValues(handler.AuthOutcome(err)).Inc()
			if err != nil {
				return err
			}

			handler.SetPrincipal(c, principal)
			return next(c)
		}
	}
}
