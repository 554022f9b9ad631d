// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/go-order-keeper/models"
)

// Level is the kind of access a route demands.
type Level int

const (
	// LevelPublic routes are served without inspecting credentials.
	LevelPublic Level = iota
	// LevelAuthenticated routes need any resolved principal.
	LevelAuthenticated
	// LevelRole routes need a principal holding Requirement.Role.
	LevelRole
)

const wildcardSuffix = "/**"

// Requirement is the access level of a single route.
type Requirement struct {
	Level Level
	Role  models.Role
}

// Public returns a requirement that admits everyone.
func Public() Requirement { return Requirement{Level: LevelPublic} }

// Authenticated returns a requirement that admits any resolved principal.
func Authenticated() Requirement { return Requirement{Level: LevelAuthenticated} }

// RequireRole returns a requirement that admits principals holding role.
func RequireRole(role models.Role) Requirement {
	return Requirement{Level: LevelRole, Role: role}
}

// IsPublic reports whether credentials may be skipped entirely.
func (r Requirement) IsPublic() bool {
	return r.Level == LevelPublic
}

// Allows reports whether an authenticated principal satisfies r.
func (r Requirement) Allows(p models.Principal) bool {
	switch r.Level {
	case LevelPublic, LevelAuthenticated:
		return true
	case LevelRole:
		return p.HasRole(r.Role)
	default:
		return false
	}
}

// String returns the textual form accepted by [ParseRequirement].
func (r Requirement) String() string {
	switch r.Level {
	case LevelPublic:
		return "public"
	case LevelAuthenticated:
		return "authenticated"
	case LevelRole:
		return "role=" + r.Role.String()
	default:
		return "unknown"
	}
}

// ParseRequirement parses "public", "authenticated" or "role=<ROLE>".
// Matching is case-insensitive.
func ParseRequirement(s string) (Requirement, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case lower == "public":
		return Public(), nil
	case lower == "authenticated":
		return Authenticated(), nil
	case strings.HasPrefix(lower, "role="):
		role := models.Role(strings.ToUpper(strings.TrimSpace(s[len("role="):])))
		if !role.Valid() {
			return Requirement{}, fmt.Errorf("%w: unknown role in %q", ErrInvalidRequirement, s)
		}
		return RequireRole(role), nil
	default:
		return Requirement{}, fmt.Errorf("%w: %q", ErrInvalidRequirement, s)
	}
}

// Rule binds a route pattern, optionally restricted to one HTTP method, to a
// requirement.
type Rule struct {
	// Method is an upper-case HTTP method or empty for any method.
	Method string
	// Pattern is an absolute path, optionally ending in "/**".
	Pattern     string
	Requirement Requirement
}

// String returns the textual form accepted by [ParseRule].
func (r Rule) String() string {
	if r.Method == "" {
		return r.Pattern + "=" + r.Requirement.String()
	}
	return r.Method + " " + r.Pattern + "=" + r.Requirement.String()
}

func (r Rule) wildcard() bool {
	return strings.HasSuffix(r.Pattern, wildcardSuffix)
}

// base is the path a wildcard pattern matches, without the "/**" suffix.
func (r Rule) base() string {
	return strings.TrimSuffix(r.Pattern, wildcardSuffix)
}

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// ParseRule parses a rule of the form "[METHOD ]/pattern=requirement",
// e.g. "GET /api/products/**=public" or "/api/orders/stats=role=ADMIN".
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	route, req, ok := strings.Cut(s, "=")
	if !ok {
		return Rule{}, fmt.Errorf("%w: missing requirement in %q", ErrInvalidRule, s)
	}

	requirement, err := ParseRequirement(req)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	var method string
	pattern := strings.TrimSpace(route)
	if m, p, found := strings.Cut(pattern, " "); found {
		method = strings.ToUpper(m)
		pattern = strings.TrimSpace(p)
		if _, known := knownMethods[method]; !known {
			return Rule{}, fmt.Errorf("%w: unknown method %q", ErrInvalidRule, m)
		}
	}

	if !strings.HasPrefix(pattern, "/") {
		return Rule{}, fmt.Errorf("%w: pattern %q must start with /", ErrInvalidRule, pattern)
	}
	if strings.Contains(strings.TrimSuffix(pattern, wildcardSuffix), "*") {
		return Rule{}, fmt.Errorf("%w: wildcard allowed only as trailing /** in %q", ErrInvalidRule, pattern)
	}

	return Rule{Method: method, Pattern: normalize(pattern), Requirement: requirement}, nil
}

// DefaultRules returns the built-in route table.
func DefaultRules() []Rule {
	return []Rule{
		{Pattern: "/api/auth/register", Requirement: Public()},
		{Pattern: "/api/auth/login", Requirement: Public()},
		{Pattern: "/api/auth/**", Requirement: Authenticated()},
		{Pattern: "/api/public/**", Requirement: Public()},
		{Pattern: "/metrics", Requirement: Public()},
		{Method: http.MethodGet, Pattern: "/api/products/**", Requirement: Public()},
		{Pattern: "/api/products/**", Requirement: RequireRole(models.RoleAdmin)},
		{Method: http.MethodPut, Pattern: "/api/orders/**", Requirement: RequireRole(models.RoleAdmin)},
		{Method: http.MethodGet, Pattern: "/api/orders/stats", Requirement: RequireRole(models.RoleAdmin)},
		{Pattern: "/api/orders/**", Requirement: Authenticated()},
	}
}

type ruleKey struct {
	method  string
	pattern string
}

// Policy is an immutable route table. The zero value is not usable; build
// one with [New].
type Policy struct {
	exact     map[ruleKey]Requirement
	wildcards map[ruleKey]Requirement
	def       Requirement
}

// New builds a policy from rules. A later rule with the same method and
// pattern replaces an earlier one, so configured rules appended after
// [DefaultRules] override them.
func New(def Requirement, rules ...Rule) *Policy {
	p := &Policy{
		exact:     make(map[ruleKey]Requirement),
		wildcards: make(map[ruleKey]Requirement),
		def:       def,
	}

	for _, r := range rules {
		if r.wildcard() {
			p.wildcards[ruleKey{method: r.Method, pattern: r.base()}] = r.Requirement
			continue
		}
		p.exact[ruleKey{method: r.Method, pattern: r.Pattern}] = r.Requirement
	}

	return p
}

// Default returns the requirement of unmatched routes.
func (p *Policy) Default() Requirement {
	return p.def
}

// Resolve returns the requirement for a request.
func (p *Policy) Resolve(method, requestPath string) Requirement {
	method = strings.ToUpper(method)
	requestPath = normalize(requestPath)

	if req, ok := p.lookup(p.exact, method, requestPath); ok {
		return req
	}

	// walk from the full path towards the root; the first hit is the longest prefix
	for base := requestPath; ; base = parent(base) {
		if req, ok := p.lookup(p.wildcards, method, base); ok {
			return req
		}
		if base == "" {
			break
		}
	}

	return p.def
}

func (p *Policy) lookup(table map[ruleKey]Requirement, method, pattern string) (Requirement, bool) {
	if req, ok := table[ruleKey{method: method, pattern: pattern}]; ok {
		return req, true
	}
	req, ok := table[ruleKey{pattern: pattern}]
	return req, ok
}

// normalize cleans dot segments and trailing slashes. The root wildcard
// "/**" has base "", so the root path is kept as "/".
func normalize(p string) string {
	if p == "" {
		return "/"
	}
	if strings.HasSuffix(p, wildcardSuffix) {
		base := normalize(strings.TrimSuffix(p, wildcardSuffix))
		if base == "/" {
			return wildcardSuffix
		}
		return base + wildcardSuffix
	}
	return path.Clean("/" + p)
}

// parent drops the last path segment: "/a/b" -> "/a" -> "" (root).
func parent(p string) string {
	i := strings.LastIndex(p, "/")
	if i <= 0 {
		return ""
	}
	return p[:i]
}

// FromStrings builds a policy from configuration values: the built-in
// rules come first, so configured rules override them.
func FromStrings(defaultRequirement string, rules []string) (*Policy, error) {
	def, err := ParseRequirement(defaultRequirement)
	if err != nil {
		return nil, err
	}

	all := DefaultRules()
	for _, s := range rules {
		rule, err := ParseRule(s)
		if err != nil {
			return nil, err
		}
		all = append(all, rule)
	}

	return New(def, all...), nil
}
