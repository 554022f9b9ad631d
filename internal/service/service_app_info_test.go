package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-order-keeper/internal/config"
	"github.com/MKhiriev/go-order-keeper/internal/logger"
	"github.com/MKhiriev/go-order-keeper/models"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.App
		build       models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{
			name:        "configured version wins",
			cfg:         config.App{Version: "3.1.4"},
			build:       models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"),
			wantVersion: "3.1.4",
		},
		{
			name:        "build version as fallback",
			build:       models.NewAppBuildInfo("v1.2.3-beta+build.42", "", ""),
			wantVersion: "v1.2.3-beta+build.42",
		},
		{
			name:        "unset build info reports N/A",
			build:       models.NewAppBuildInfo("", "", ""),
			wantVersion: "N/A",
		},
		{
			name:    "nothing at all",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
			assert.Equal(t, tt.wantVersion, svc.GetBuildInfo(context.Background()).Version)
		})
	}
}

func TestGetBuildInfo_KeepsDateAndCommit(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "2.0.0"}, models.NewAppBuildInfo("", "2026-10-01", "deadbeef"), logger.Nop())
	require.NoError(t, err)

	info := svc.GetBuildInfo(context.Background())

	assert.Equal(t, models.AppBuildInfo{Version: "2.0.0", Date: "2026-10-01", Commit: "deadbeef"}, info)
}
