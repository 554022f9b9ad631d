package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-order-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// Shutdown reports NOT_SERVING first so health checkers drain traffic, then
// stops accepting RPCs. A GracefulStop outliving ctx is cut short.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
