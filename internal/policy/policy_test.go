package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/models"
)

func TestParseRequirement(t *testing.T) {
	tests := []struct {
		in      string
		want    Requirement
		wantErr bool
	}{
		{in: "public", want: Public()},
		{in: " Authenticated ", want: Authenticated()},
		{in: "role=ADMIN", want: RequireRole(models.RoleAdmin)},
		{in: "ROLE=user", want: RequireRole(models.RoleUser)},
		{in: "role=ROOT", wantErr: true},
		{in: "anyone", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRequirement(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequirement)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequirement_StringRoundTrip(t *testing.T) {
	for _, r := range []Requirement{Public(), Authenticated(), RequireRole(models.RoleAdmin)} {
		parsed, err := ParseRequirement(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestRequirement_Allows(t *testing.T) {
	user := models.Principal{Username: "bob", Role: models.RoleUser}
	admin := models.Principal{Username: "root", Role: models.RoleAdmin}

	assert.True(t, Authenticated().Allows(user))
	assert.True(t, RequireRole(models.RoleUser).Allows(user))
	assert.False(t, RequireRole(models.RoleAdmin).Allows(user))
	assert.True(t, RequireRole(models.RoleAdmin).Allows(admin))
	assert.True(t, RequireRole(models.RoleUser).Allows(admin))
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Rule
		wantErr bool
	}{
		{
			name: "method agnostic exact",
			in:   "/api/auth/login=public",
			want: Rule{Pattern: "/api/auth/login", Requirement: Public()},
		},
		{
			name: "method specific wildcard",
			in:   "get /api/products/**=public",
			want: Rule{Method: http.MethodGet, Pattern: "/api/products/**", Requirement: Public()},
		},
		{
			name: "role requirement keeps its equals sign",
			in:   "PUT /api/orders/**=role=ADMIN",
			want: Rule{Method: http.MethodPut, Pattern: "/api/orders/**", Requirement: RequireRole(models.RoleAdmin)},
		},
		{
			name: "trailing slash is dropped",
			in:   "/api/news/=authenticated",
			want: Rule{Pattern: "/api/news", Requirement: Authenticated()},
		},
		{
			name: "root wildcard",
			in:   "/**=public",
			want: Rule{Pattern: "/**", Requirement: Public()},
		},
		{name: "missing requirement", in: "/api/news", wantErr: true},
		{name: "relative pattern", in: "api/news=public", wantErr: true},
		{name: "unknown method", in: "FETCH /api/news=public", wantErr: true},
		{name: "inner wildcard", in: "/api/*/items=public", wantErr: true},
		{name: "bad requirement", in: "/api/news=maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRule(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_Resolve_Defaults(t *testing.T) {
	p := New(Authenticated(), DefaultRules()...)
	admin := RequireRole(models.RoleAdmin)

	tests := []struct {
		method string
		path   string
		want   Requirement
	}{
		{http.MethodPost, "/api/auth/register", Public()},
		{http.MethodPost, "/api/auth/login", Public()},
		{http.MethodGet, "/api/auth/me", Authenticated()},
		{http.MethodGet, "/api/public/menu", Public()},
		{http.MethodGet, "/api/public", Public()},
		{http.MethodGet, "/metrics", Public()},
		{http.MethodGet, "/api/products", Public()},
		{http.MethodGet, "/api/products/7", Public()},
		{http.MethodPost, "/api/products", admin},
		{http.MethodDelete, "/api/products/7", admin},
		{http.MethodPut, "/api/orders/3/status", admin},
		{http.MethodGet, "/api/orders/stats", admin},
		{http.MethodGet, "/api/orders", Authenticated()},
		{http.MethodPost, "/api/orders", Authenticated()},
		{http.MethodGet, "/api/orders/status/PENDING", Authenticated()},
		{http.MethodGet, "/somewhere/else", Authenticated()},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Resolve(tt.method, tt.path))
		})
	}
}

func TestPolicy_Resolve_ExactBeatsWildcard(t *testing.T) {
	p := New(Public(),
		Rule{Method: http.MethodGet, Pattern: "/api/x/**", Requirement: Public()},
		Rule{Pattern: "/api/x/secret", Requirement: RequireRole(models.RoleAdmin)},
	)

	assert.Equal(t, RequireRole(models.RoleAdmin), p.Resolve(http.MethodGet, "/api/x/secret"))
	assert.Equal(t, Public(), p.Resolve(http.MethodGet, "/api/x/other"))
}

func TestPolicy_Resolve_LongestPrefixWins(t *testing.T) {
	p := New(Public(),
		Rule{Pattern: "/api/**", Requirement: Authenticated()},
		Rule{Pattern: "/api/admin/**", Requirement: RequireRole(models.RoleAdmin)},
	)

	assert.Equal(t, RequireRole(models.RoleAdmin), p.Resolve(http.MethodGet, "/api/admin/users/1"))
	assert.Equal(t, Authenticated(), p.Resolve(http.MethodGet, "/api/orders"))
	assert.Equal(t, Public(), p.Resolve(http.MethodGet, "/index.html"))
}

func TestPolicy_Resolve_MethodSpecificWins(t *testing.T) {
	p := New(Public(),
		Rule{Pattern: "/api/items/**", Requirement: RequireRole(models.RoleAdmin)},
		Rule{Method: http.MethodGet, Pattern: "/api/items/**", Requirement: Public()},
	)

	assert.Equal(t, Public(), p.Resolve("get", "/api/items/1"))
	assert.Equal(t, RequireRole(models.RoleAdmin), p.Resolve(http.MethodPost, "/api/items"))
}

func TestPolicy_Resolve_LaterRuleOverrides(t *testing.T) {
	override, err := ParseRule("/api/public/**=authenticated")
	require.NoError(t, err)

	p := New(Authenticated(), append(DefaultRules(), override)...)
	assert.Equal(t, Authenticated(), p.Resolve(http.MethodGet, "/api/public/menu"))
}

func TestPolicy_Resolve_DotSegmentsCannotEscape(t *testing.T) {
	p := New(Authenticated(), DefaultRules()...)

	assert.Equal(t, Authenticated(), p.Resolve(http.MethodGet, "/api/public/../orders"))
	assert.Equal(t, RequireRole(models.RoleAdmin), p.Resolve(http.MethodDelete, "/api/products/1/"))
}

func TestPolicy_Resolve_RootWildcard(t *testing.T) {
	p := New(Authenticated(), Rule{Pattern: "/**", Requirement: Public()})

	assert.Equal(t, Public(), p.Resolve(http.MethodGet, "/"))
	assert.Equal(t, Public(), p.Resolve(http.MethodGet, "/a/b/c"))
	assert.Equal(t, Authenticated(), p.Default())
}

func TestFromStrings(t *testing.T) {
	p, err := FromStrings("authenticated", []string{"GET /api/products/**=role=ADMIN", "/api/reports/**=public"})
	require.NoError(t, err)

	assert.Equal(t, RequireRole(models.RoleAdmin), p.Resolve(http.MethodGet, "/api/products/3"))
	assert.True(t, p.Resolve(http.MethodGet, "/api/reports/daily").IsPublic())
	assert.True(t, p.Resolve(http.MethodPost, "/api/auth/login").IsPublic())
	assert.Equal(t, Authenticated(), p.Resolve(http.MethodGet, "/somewhere"))
}

func TestFromStrings_Invalid(t *testing.T) {
	_, err := FromStrings("nobody", nil)
	assert.ErrorIs(t, err, ErrInvalidRequirement)

	_, err = FromStrings("public", []string{"api/no-slash=public"})
	assert.ErrorIs(t, err, ErrInvalidRule)
}
