package main

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/handler"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/internal/metrics"
	"github.com/MKhiriev/go-order-keeper/internal/policy"
	"github.com/MKhiriev/go-order-keeper/internal/server"
	"github.com/MKhiriev/go-order-keeper/internal/service"
	"github.com/MKhiriev/go-order-keeper/internal/store"
	"github.com/MKhiriev/go-order-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("order-keeper-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Any("build", buildInfo).Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	accessPolicy, err := policy.FromStrings(cfg.Access.DefaultRequirement, cfg.Access.Rules)
	if err != nil {
		log.Fatal().Err(err).Msg("error building access policy")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	log.Info().Str("version", services.AppInfoService.GetAppVersion(ctx)).Msg("services created")

	if err = services.Seed(ctx, cfg.Seed); err != nil {
		log.Fatal().Err(err).Msg("error seeding storage")
	}

	handlers, err := handler.NewHandlers(services, accessPolicy, metrics.New(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
