// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour and responds with
// a 404 NOT_FOUND envelope instead, hiding the existence of the route from
// callers that use an unsupported method.
//
// Chi only invokes this handler after routing has failed on the method, so
// it never dispatches back into the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
