package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

const principalKey = "principal"

// SetPrincipal stores the authenticated caller on the request context.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal injected by the Authenticate middleware,
// or nil for anonymous requests.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

// currentPrincipal is the handler-side guard: the gate should already have
// rejected anonymous callers, so a missing principal means the route was
// registered without it.
func currentPrincipal(c echo.Context) (*domain.Principal, error) {
	p := PrincipalFrom(c)
	if p == nil {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}
