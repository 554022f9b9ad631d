// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level of an account.
type Role string

const (
	// RoleUser is assigned to every self-registered account.
	RoleUser Role = "USER"

	// RoleAdmin is granted only through bootstrap seeding, never through
	// the public registration flow.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
// Username is unique and case-sensitive. PasswordHash is a one-way salted
// digest and must never leave the server.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Role defines what the account is allowed to do.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the plaintext username/password pair supplied by a caller
// at login or registration time. It is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
