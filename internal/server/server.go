package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/handler"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/workers"
)

const (
	shutdownTimeout     = 15 * time.Second
	healthProbeInterval = 10 * time.Second
)

type server struct {
	handlers *handler.Handlers

	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{handlers: handlers, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP, cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or one of the
// transports fails, then shuts every transport down.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}

func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// background maintenance lives as long as the servers
	background := workers.New()
	if s.handlers.HTTP != nil {
		background.Add(workers.Func(s.handlers.HTTP.RunMaintenance))
	}
	if s.gRPCServer != nil {
		background.Add(workers.Func(func(ctx context.Context) {
			s.handlers.GRPC.Watch(ctx, healthProbeInterval)
		}))
	}

	backgroundDone := make(chan struct{})
	go func() {
		background.Run(ctx)
		close(backgroundDone)
	}()

	errs := make(chan error, 2)

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go func() {
			if err := s.httpServer.RunServer(); err != nil {
				errs <- fmt.Errorf("HTTP server: %w", err)
			}
		}()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go func() {
			if err := s.gRPCServer.RunServer(); err != nil {
				errs <- fmt.Errorf("gRPC server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown requested")
	case runErr = <-errs:
		s.logger.Err(runErr).Msg("server failed")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	s.Shutdown(shutdownCtx)

	cancel()
	<-backgroundDone

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
