// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the identity resolved from a valid token for exactly one
// in-flight request. It is discarded when the request completes.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the principal holds the [RoleAdmin] role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// HasRole reports whether the principal satisfies the given role.
// Admins satisfy every role requirement.
func (p Principal) HasRole(role Role) bool {
	return p.Role == role || p.IsAdmin()
}
