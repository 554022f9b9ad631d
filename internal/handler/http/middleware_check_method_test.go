// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/models"
)

// buildRouter creates a minimal chi.Mux with nested routes. It does not use
// Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Route("/api/items", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("items"))
		})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "registered GET passes", method: http.MethodGet, path: "/api/items", wantStatus: http.StatusOK},
		{name: "registered POST passes", method: http.MethodPost, path: "/api/items", wantStatus: http.StatusCreated},
		{name: "registered DELETE with param passes", method: http.MethodDelete, path: "/api/items/4", wantStatus: http.StatusNoContent},
		{name: "PUT on collection is hidden", method: http.MethodPut, path: "/api/items", wantStatus: http.StatusNotFound},
		{name: "GET on item is hidden", method: http.MethodGet, path: "/api/items/4", wantStatus: http.StatusNotFound},
		{name: "PATCH is hidden", method: http.MethodPatch, path: "/api/items", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/nothing", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_WritesNotFoundEnvelope(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/items", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, CodeNotFound, resp.Code)
}

func TestCheckHTTPMethod_DoesNotReenterRouter(t *testing.T) {
	var passes int
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passes++
			next.ServeHTTP(w, r)
		})
	})
	router.Route("/api/orders", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {})
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {})
	})
	router.MethodNotAllowed(CheckHTTPMethod())

	for _, method := range []string{http.MethodDelete, http.MethodPut} {
		passes = 0
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(method, "/api/orders", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code, method)
		assert.Equal(t, 1, passes, method)
	}
}
