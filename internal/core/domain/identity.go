package domain

import (
	"strings"
	"time"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// Identity is a registered account. The secret is only ever held as a digest.
type Identity struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated caller of a single request. It is rebuilt
// from the Identity on every authentication and never persisted.
type Principal struct {
	LoginID      string
	Capabilities []string
}

// NewPrincipal derives a Principal from a stored identity.
func NewPrincipal(id *Identity) *Principal {
	return &Principal{
		LoginID:      id.Email,
		Capabilities: ParseCapabilities(id.Role),
	}
}

// HasCapability reports whether the principal holds capability c.
func (p *Principal) HasCapability(c string) bool {
	if p == nil {
		return false
	}
	for _, have := range p.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// ParseCapabilities splits a stored role label into an ordered, duplicate-free
// capability list. Labels written by this service hold a single capability.
func ParseCapabilities(role string) []string {
	parts := strings.Split(role, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
