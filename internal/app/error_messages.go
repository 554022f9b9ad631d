// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// order keeper HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of the response envelope. Keeping them in one place keeps
// the wording consistent throughout the API.
package app

const (
	// MsgInvalidRequestBody is returned when the JSON body cannot be decoded.
	// Decoder details stay in the log.
	MsgInvalidRequestBody = "invalid request body"

	// MsgUsernameTaken is returned when registration hits an existing
	// account.
	MsgUsernameTaken = "username is already taken"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password.
	MsgInvalidCredentials = "invalid username or password"

	// MsgAuthenticationRequired is returned for a missing, malformed,
	// expired or tampered bearer token.
	MsgAuthenticationRequired = "authentication required"

	// MsgAccessDenied is returned when the caller's role does not satisfy
	// the route requirement.
	MsgAccessDenied = "access denied"

	MsgProductNotFound  = "product not found"
	MsgOrderNotFound    = "order not found"
	MsgResourceNotFound = "resource not found"

	// MsgTooManyRequests is returned by the login throttle.
	MsgTooManyRequests = "too many requests"

	// MsgServiceUnavailable is returned when the identity store or another
	// dependency cannot be reached. The cause is only logged.
	MsgServiceUnavailable = "service temporarily unavailable"

	MsgMenuUnavailable = "menu is unavailable"
	MsgUnhealthy       = "service is unhealthy"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
