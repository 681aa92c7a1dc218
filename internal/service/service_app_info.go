package service

import (
	"context"

	"github.com/MKhiriev/silabos-admin/internal/config"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/models"
)

type appInfoService struct {
	appVersion models.AppVersion

	logger *logger.Logger
}

// NewAppInfoService combines the configured application version with the
// linker-injected build metadata.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: models.AppVersion{
			Version:     cfg.Version,
			BuildDate:   build.BuildDate(),
			BuildCommit: build.BuildCommit(),
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppVersion {
	return s.appVersion
}
