// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP request and response helpers, HTTP client initialization, and JWT
// token issuance and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authorizer stores the resolved
// [models.Principal] of the current request.
var PrincipalCtxKey = contextKey("principal")

// ContextWithPrincipal returns a copy of ctx carrying p.
func ContextWithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// PrincipalFromContext retrieves the principal attached by the authorizer.
//
// Returns ok == false on public routes, where no credentials were inspected.
//
// Example usage:
//
//	principal, ok := utils.PrincipalFromContext(r.Context())
//	if !ok {
//	    // anonymous request
//	}
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}

// PeerAddrCtxKey holds the TCP peer address as accepted by the server,
// before any forwarding headers are applied.
var PeerAddrCtxKey = contextKey("peer_addr")

// ContextWithPeerAddr returns a copy of ctx carrying the connection's
// remote address.
func ContextWithPeerAddr(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, PeerAddrCtxKey, addr)
}

// PeerAddrFromContext returns the address stored by [ContextWithPeerAddr].
func PeerAddrFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(PeerAddrCtxKey).(string)
	return addr, ok && addr != ""
}
