package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/handler"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/api/metrics"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

// Authorize enforces the route table of gate. It must run after
// Authenticate. The matched route pattern is used so that path parameters do
// not affect the decision.
func Authorize(gate ports.AccessGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := c.Path()
			if route == "" {
				route = c.Request().URL.Path
			}

			d := gate.Decide(route, handler.PrincipalFrom(c))
			metrics.GateDecisionsTotal.WithLabelValues(decisionLabel(d)).Inc()
			if !d.Allowed {
				return d.Reason
			}
			return next(c)
		}
	}
}

func decisionLabel(d domain.Decision) string {
	switch {
	case d.Allowed:
		return "allow"
	case d.Reason == domain.ErrForbidden:
		return "forbidden"
	default:
		return "unauthenticated"
	}
}
