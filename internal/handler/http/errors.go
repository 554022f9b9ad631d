// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrForbidden is returned by the authorizer when the principal lacks
	// the role the route requires.
	ErrForbidden = errors.New("insufficient role")

	// ErrRouteNotFound is returned for paths and methods no route serves.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidParameter is returned when a path or query parameter
	// cannot be parsed.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTooManyRequests is returned by the login throttle.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrUnhealthy is returned by the health endpoint when a dependency
	// does not answer.
	ErrUnhealthy = errors.New("service is unhealthy")

	// ErrNoPrincipal is returned when a handler that needs an identity runs
	// without one in its context.
	ErrNoPrincipal = errors.New("no principal in request context")
)
