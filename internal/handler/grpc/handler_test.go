package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

type healthFunc func(ctx context.Context) error

func (f healthFunc) Check(ctx context.Context) error { return f(ctx) }

func statusOf(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(&service.Services{HealthService: healthFunc(func(context.Context) error { return nil })}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, ServiceName))
}

func TestHandler_ProbeFollowsHealthService(t *testing.T) {
	var healthErr error
	h := NewHandler(&service.Services{HealthService: healthFunc(func(context.Context) error { return healthErr })}, logger.Nop())

	h.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, h, ServiceName))

	healthErr = errors.New("database is down")
	h.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, ServiceName))
}

func TestHandler_WatchStopsOnCancel(t *testing.T) {
	h := NewHandler(&service.Services{HealthService: healthFunc(func(context.Context) error { return nil })}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Watch(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return statusOf(t, h, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestHandler_Shutdown(t *testing.T) {
	h := NewHandler(&service.Services{HealthService: healthFunc(func(context.Context) error { return nil })}, logger.Nop())
	h.Probe(context.Background())

	h.Shutdown()
	h.Probe(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, h, ""))
}
