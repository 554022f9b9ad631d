// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *PasswordHasher {
	t.Helper()
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewPasswordHasher_InvalidCost(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}

func TestPasswordHasher_HashIsSalted(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("admin123")
	require.NoError(t, err)
	second, err := h.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each call must use a fresh salt")
	assert.True(t, h.Matches("admin123", first))
	assert.True(t, h.Matches("admin123", second))
}

func TestPasswordHasher_HashIsNotPlaintext(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotContains(t, digest, "admin123")
}

func TestPasswordHasher_Matches_WrongSecret(t *testing.T) {
	h := newTestHasher(t)

	digest, err := h.Hash("admin123")
	require.NoError(t, err)

	assert.False(t, h.Matches("admin124", digest))
	assert.False(t, h.Matches("", digest))
}

func TestPasswordHasher_Matches_MalformedDigest(t *testing.T) {
	h := newTestHasher(t)
	assert.False(t, h.Matches("admin123", "not-a-bcrypt-digest"))
	assert.False(t, h.Matches("admin123", ""))
}

func TestPasswordHasher_Hash_TooLong(t *testing.T) {
	h := newTestHasher(t)

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	_, err := h.Hash(string(long))
	assert.Error(t, err)
}

func TestPasswordHasher_MatchesNone(t *testing.T) {
	h := newTestHasher(t)
	assert.False(t, h.MatchesNone(dummySecret))
	assert.False(t, h.MatchesNone("anything"))
}
