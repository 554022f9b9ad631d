// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// Token is the result of a successful authentication: a signed, time-bound
// identity artifact. It is never stored server-side.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// Subject is the username the token was issued for.
	Subject string `json:"-"`

	// IssuedAt is the "iat" claim.
	IssuedAt time.Time `json:"-"`

	// ExpiresAt is the "exp" claim; the token is rejected once it has passed.
	ExpiresAt time.Time `json:"expires_at"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// AuthResponse is the payload returned by the login and registration
// endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
}

// Session is the outcome of a successful login or registration: the issued
// token and the identity it was issued for.
type Session struct {
	Token     Token
	Principal Principal
}

// AuthResponse builds the payload returned to the client.
func (s Session) AuthResponse() AuthResponse {
	return AuthResponse{
		Token:     s.Token.SignedString,
		TokenType: "Bearer",
		ExpiresAt: s.Token.ExpiresAt,
		Username:  s.Principal.Username,
		Role:      s.Principal.Role,
	}
}
