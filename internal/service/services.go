package service

import (
	"fmt"

	"github.com/MKhiriev/silabos-admin/internal/config"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/store"
	"github.com/MKhiriev/silabos-admin/internal/validators"
	"github.com/MKhiriev/silabos-admin/models"
)

type Services struct {
	AuthService     AuthService
	DocenteService  DocenteService
	SyllabusService SyllabusService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	syllabusService := NewSyllabusValidationService(validators.NewStructValidator()).
		Wrap(NewSyllabusService(storages.SyllabusRepository, logger))

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		DocenteService:  NewDocenteService(storages.DocenteRepository, logger),
		SyllabusService: syllabusService,
		AppInfoService:  appInfoService,
	}, nil
}
