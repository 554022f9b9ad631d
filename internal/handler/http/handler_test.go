package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/policy"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/models"
)

// fakeAuthService resolves tokens from a fixed table.
type fakeAuthService struct {
	principals map[string]models.Principal
	err        error

	calls     int
	lastToken string
}

func (f *fakeAuthService) Register(context.Context, models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}

func (f *fakeAuthService) Login(context.Context, models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}

func (f *fakeAuthService) SeedAdmin(context.Context, models.Credentials) error {
	return nil
}

func (f *fakeAuthService) Authenticate(_ context.Context, token string) (models.Principal, error) {
	f.calls++
	f.lastToken = token

	if f.err != nil {
		return models.Principal{}, f.err
	}
	p, ok := f.principals[token]
	if !ok {
		return models.Principal{}, service.ErrUnauthorized
	}
	return p, nil
}

func newTestHandler(t *testing.T, services *service.Services, cfg config.Server) *Handler {
	t.Helper()

	return NewHandler(
		services,
		policy.New(policy.Authenticated(), policy.DefaultRules()...),
		metrics.New(),
		cfg,
		logger.Nop(),
	)
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}
