package service

import (
	"strings"

	"github.com/sowmya-komirishetti-7/entity-mapping/internal/core/domain"
)

// Access describes what a route requires of the caller.
type Access struct {
	public     bool
	capability string
}

var (
	// Public routes are reachable without a principal.
	Public = Access{public: true}
	// Authenticated routes accept any principal.
	Authenticated = Access{}
)

// RequireCapability admits principals holding exactly capability c.
func RequireCapability(c string) Access {
	return Access{capability: c}
}

// Rule binds a path pattern to an Access. A pattern ending in "/*" matches
// the prefix and everything below it; any other pattern matches exactly.
type Rule struct {
	Pattern string
	Access  Access
}

func (r Rule) matches(route string) bool {
	if prefix, ok := strings.CutSuffix(r.Pattern, "/*"); ok {
		return route == prefix || strings.HasPrefix(route, prefix+"/")
	}
	return route == r.Pattern
}

// DefaultRules is the route table served by the HTTP layer.
var DefaultRules = []Rule{
	{Pattern: "/register", Access: Public},
	{Pattern: "/login", Access: Public},
	{Pattern: "/health", Access: Public},
	{Pattern: "/health/ready", Access: Public},
	{Pattern: "/metrics", Access: Public},
	{Pattern: "/swagger/*", Access: Public},
	{Pattern: "/admin/*", Access: RequireCapability(domain.RoleAdmin)},
}

// Gate is a static, stateless route-to-capability table. Rules are checked in
// order; a route no rule matches requires an authenticated principal.
type Gate struct {
	rules []Rule
}

func NewGate(rules []Rule) *Gate {
	return &Gate{rules: append([]Rule(nil), rules...)}
}

// Decide is pure and total: every (route, principal) pair yields a Decision.
func (g *Gate) Decide(route string, principal *domain.Principal) domain.Decision {
	access := Authenticated
	for _, r := range g.rules {
		if r.matches(route) {
			access = r.Access
			break
		}
	}

	if access.public {
		return domain.Allow()
	}
	if principal == nil {
		return domain.Deny(domain.ErrUnauthenticated)
	}
	if access.capability != "" && !principal.HasCapability(access.capability) {
		return domain.Deny(domain.ErrForbidden)
	}
	return domain.Allow()
}
