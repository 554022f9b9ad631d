// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

func newTestAdapter(t *testing.T, serverURL string) MenuAdapter {
	t.Helper()

	a, err := NewHTTPMenuAdapter(config.Upstream{MenuURL: serverURL, Timeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPMenuAdapter_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "ftp://example.com/menu", "http://", "://bad"} {
		t.Run(raw, func(t *testing.T) {
			a, err := NewHTTPMenuAdapter(config.Upstream{MenuURL: raw}, logger.Nop())
			assert.Error(t, err)
			assert.Nil(t, a)
		})
	}
}

func TestFetchMenu_Success(t *testing.T) {
	body := `{"data":[{"Nombre ":"Galleta","Precio ":2500}]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/menu", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/menu?key=abc")
	got, err := a.FetchMenu(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, body, string(got))
}

func TestFetchMenu_MissingDataMember(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchMenu(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

func TestFetchMenu_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchMenu(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

func TestFetchMenu_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("upstream says no"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).FetchMenu(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchMenu_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchMenu(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestFetchMenu_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).FetchMenu(ctx)

	assert.Error(t, err)
}
