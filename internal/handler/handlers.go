package handler

import (
	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-order-keeper/internal/handler/http"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/policy"
	"github.com/MKhiriev/go-order-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, accessPolicy *policy.Policy, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, accessPolicy, m, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
