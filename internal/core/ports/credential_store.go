package ports

import (
	"context"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

// CredentialStore persists identities. It is registration-only: identities are
// never updated or deleted through it.
type CredentialStore interface {
	// FindByLoginID returns domain.ErrNotFound when no identity has the email.
	FindByLoginID(ctx context.Context, email string) (*domain.Identity, error)
	// Save assigns an id and returns a populated copy. A duplicate email yields
	// domain.ErrConflict.
	Save(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
}

// PasswordHasher is a salted one-way hash with a tunable cost.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}
