package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/policy"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

type alwaysHealthy struct{}

func (alwaysHealthy) Check(context.Context) error { return nil }

func newHandlers(cfg config.Server) (*Handlers, error) {
	return NewHandlers(
		&service.Services{HealthService: alwaysHealthy{}},
		policy.New(policy.Authenticated(), policy.DefaultRules()...),
		metrics.New(),
		cfg,
		logger.Nop(),
	)
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{name: "both addresses", cfg: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "only HTTP", cfg: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "only gRPC", cfg: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := newHandlers(tt.cfg)

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := newHandlers(config.Server{})

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
