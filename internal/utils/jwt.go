package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-order-keeper/models"
)

// TokenCodec issues and validates HMAC-SHA256 signed JWT tokens.
//
// The sign key, issuer and TTL are fixed at construction; a *TokenCodec is
// safe for concurrent use by any number of requests.
//
// Tokens cannot be revoked: a token stays valid until its "exp" claim
// passes or the sign key changes. A denylist consulted in Validate would be
// the place to add revocation.
type TokenCodec struct {
	signKey []byte
	issuer  string
	ttl     time.Duration
	now     func() time.Time
}

// TokenCodecOption customizes a [TokenCodec].
type TokenCodecOption func(*TokenCodec)

// WithClock replaces the clock used by Validate to check expiry.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec creates a codec. All parameters are required.
//
// Example usage:
//
//	codec, err := utils.NewTokenCodec(cfg.App.TokenSignKey, "go-order-keeper", 24*time.Hour)
func NewTokenCodec(signKey, issuer string, ttl time.Duration, opts ...TokenCodecOption) (*TokenCodec, error) {
	if signKey == "" || issuer == "" || ttl <= 0 {
		return nil, ErrInvalidTokenCodecParams
	}

	c := &TokenCodec{
		signKey: []byte(signKey),
		issuer:  issuer,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// TTL returns the lifetime of issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue creates a token for subject with the following claims:
//   - Issuer    (iss): the codec issuer
//   - Subject   (sub): the username
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus the codec TTL
//
// Claim timestamps have one second precision.
func (c *TokenCodec) Issue(subject string, now time.Time) (models.Token, error) {
	if subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		Subject:      subject,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Validate verifies the token signature, signing method, issuer and expiry
// and returns the subject.
//
// Every failure yields [ErrInvalidToken] with no further detail.
func (c *TokenCodec) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return c.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}

	return subject, nil
}
