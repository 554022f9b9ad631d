package service

import (
	"context"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

type appInfoService struct {
	build models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when set and the linker-provided
// build version otherwise.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version != "" {
		build.Version = cfg.Version
	}
	if build.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		build:  build,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
