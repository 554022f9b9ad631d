package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummySecret is hashed once per hasher so that logins for unknown accounts
// spend the same bcrypt work as logins with a wrong password.
const dummySecret = "go-order-keeper/dummy-secret"

// PasswordHasher produces and checks salted bcrypt digests.
type PasswordHasher struct {
	cost  int
	dummy []byte
}

// NewPasswordHasher creates a hasher with the given bcrypt work factor.
//
// Example usage:
//
//	hasher, err := utils.NewPasswordHasher(bcrypt.DefaultCost)
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummySecret), cost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	return &PasswordHasher{cost: cost, dummy: dummy}, nil
}

// Hash returns a bcrypt digest of secret. Every call uses a fresh random
// salt, so hashing the same secret twice yields different digests.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// Matches reports whether secret corresponds to digest. The comparison
// runs in constant time over the digest.
func (h *PasswordHasher) Matches(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// MatchesNone burns the cost of one comparison and always reports false.
// Used when the account does not exist.
func (h *PasswordHasher) MatchesNone(secret string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(secret))
	return false
}
