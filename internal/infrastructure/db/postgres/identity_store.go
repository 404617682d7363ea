package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

var _ ports.CredentialStore = (*IdentityStore)(nil)

// IdentityStore persists identities in the identities table. The unique index
// on email is what turns a concurrent duplicate registration into a conflict.
type IdentityStore struct {
	db *sql.DB
}

func NewIdentityStore(db *sql.DB) *IdentityStore {
	return &IdentityStore{db: db}
}

func (s *IdentityStore) Save(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	saved := *identity
	row := s.db.QueryRowContext(ctx, `
		insert into identities (name, email, password_hash, role)
		values ($1, $2, $3, $4)
		returning id, created_at
	`, identity.Name, identity.Email, identity.PasswordHash, identity.Role)
	if err := row.Scan(&saved.ID, &saved.CreatedAt); err != nil {
		if pgErr, ok := maybePgError(err); ok && pgErr.Code == pgErrUniqueViolation {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return &saved, nil
}

func (s *IdentityStore) FindByLoginID(ctx context.Context, email string) (*domain.Identity, error) {
	var identity domain.Identity
	err := s.db.QueryRowContext(ctx, `
		select id, name, email, password_hash, role, created_at
		from identities
		where email = $1
	`, email).Scan(&identity.ID, &identity.Name, &identity.Email, &identity.PasswordHash, &identity.Role, &identity.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}
