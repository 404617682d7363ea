package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/ports"
)

// maxSecretBytes is the longest secret bcrypt accepts.
const maxSecretBytes = 72

// AuthService implements registration and credential checks.
type AuthService struct {
	store  ports.CredentialStore
	hasher ports.PasswordHasher
	log    zerolog.Logger
	// dummyDigest is verified against when no identity matches, so an unknown
	// email costs the same hash comparison as a wrong secret.
	dummyDigest string
}

func NewAuthService(store ports.CredentialStore, hasher ports.PasswordHasher, log zerolog.Logger) *AuthService {
	dummy, err := hasher.Hash("entity-mapping-unknown-identity")
	if err != nil {
		log.Warn().Err(err).Msg("failed to prepare dummy digest")
	}
	return &AuthService{store: store, hasher: hasher, log: log, dummyDigest: dummy}
}

// Register creates a ROLE_USER identity with a hashed secret.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Identity, error) {
	return s.create(ctx, name, email, password, domain.RoleUser)
}

// EnsureAdmin creates an admin identity unless the email is already taken.
// Registration never grants ROLE_ADMIN, so this is how the admin area gets
// its first account.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	_, err := s.create(ctx, name, email, password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrConflict) {
		s.log.Debug().Str("email", email).Msg("admin identity already present")
		return nil
	}
	if err != nil {
		return err
	}
	s.log.Info().Str("email", email).Msg("admin identity created")
	return nil
}

func (s *AuthService) create(ctx context.Context, name, email, password, role string) (*domain.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}
	if len(password) > maxSecretBytes {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxSecretBytes)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.store.Save(ctx, &domain.Identity{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrConflict
		}
		s.log.Error().Err(err).Msg("failed to save identity")
		return nil, fmt.Errorf("%w: save identity", domain.ErrPersistence)
	}
	return created, nil
}

// Authenticate checks the presented secret against the stored digest. An
// unknown email and a wrong secret fail with the same ErrInvalidCredentials so
// callers cannot tell which factor was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.Principal, error) {
	if email == "" || password == "" {
		s.hasher.Verify(password, s.dummyDigest)
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.store.FindByLoginID(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Verify(password, s.dummyDigest)
			return nil, domain.ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("credential lookup failed")
		return nil, fmt.Errorf("%w: credential lookup", domain.ErrPersistence)
	}

	if !s.hasher.Verify(password, identity.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return domain.NewPrincipal(identity), nil
}
