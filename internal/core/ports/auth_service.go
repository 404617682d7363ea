package ports

import (
	"context"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Identity, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Principal, error)
}

// AccessGate decides whether a principal (possibly nil) may reach a route.
type AccessGate interface {
	Decide(route string, principal *domain.Principal) domain.Decision
}
