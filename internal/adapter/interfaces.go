// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for external services the order server
// depends on.
//
// The package currently ships [MenuAdapter], an HTTP/REST client for the
// remote menu feed served under /api/public/menu.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"
	"encoding/json"
)

// MenuAdapter fetches the public menu document from an upstream service.
type MenuAdapter interface {
	// FetchMenu returns the upstream document verbatim. The document is a
	// JSON object carrying a "data" member; any other 2xx body is rejected
	// with ErrUnexpectedPayload.
	FetchMenu(ctx context.Context) (json.RawMessage, error)
}
