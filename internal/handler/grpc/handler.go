// Package grpc exposes the standard gRPC health checking protocol
// (grpc.health.v1) for the order keeper API.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

// ServiceName is the health service name reported alongside the overall ("")
// status.
const ServiceName = "orderkeeper.v1.OrderKeeper"

// Handler is the root gRPC transport handler.
//
// It owns a grpc.health.v1 server whose status mirrors
// [service.HealthService]. A handler instance is created once at startup and
// shared by the gRPC server.
type Handler struct {
	health  *health.Server
	checker service.HealthService

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The reported status starts as
// NOT_SERVING until the first probe succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		health:  health.NewServer(),
		checker: services.HealthService,
		logger:  logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe checks the dependencies once and publishes the result.
func (h *Handler) Probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.checker.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("health probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

// Watch probes immediately and then every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context, every time.Duration) {
	h.Probe(ctx)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
