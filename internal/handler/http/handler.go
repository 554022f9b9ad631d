package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/policy"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/utils"
)

// limiterPruneInterval is how often idle rate limiter buckets are dropped.
const limiterPruneInterval = time.Minute

type Handler struct {
	services *service.Services

	// policy maps routes to access requirements. Read-only after startup.
	policy  *policy.Policy
	metrics *metrics.Metrics

	// limiter throttles the credential endpoints; nil disables throttling.
	limiter *rateLimiter

	traceIDs *utils.UUIDGenerator

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, accessPolicy *policy.Policy, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		policy:   accessPolicy,
		metrics:  m,
		traceIDs: utils.NewUUIDGenerator(),
		cfg:      cfg,
		logger:   logger,
	}

	if cfg.AuthRateLimit > 0 {
		h.limiter = newRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}

	logger.Info().Msg("http handler created")
	return h
}

// RunMaintenance runs background housekeeping until ctx is done.
func (h *Handler) RunMaintenance(ctx context.Context) {
	if h.limiter != nil {
		h.limiter.run(ctx, limiterPruneInterval)
	}
}
