package http

import (
	"time"

	"github.com/MKhiriev/silabos-admin/internal/config"
	"github.com/MKhiriev/silabos-admin/internal/logger"
	"github.com/MKhiriev/silabos-admin/internal/service"
	"github.com/MKhiriev/silabos-admin/internal/utils"
)

// Handler holds the dependencies shared by every controller and middleware.
type Handler struct {
	services *service.Services

	sessionCookieName string
	tokenDuration     time.Duration
	requestTimeout    time.Duration
	allowedOrigins    []string

	traceIDGenerator *utils.UUIDGenerator
	logger           *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		sessionCookieName: cfg.App.SessionCookieName,
		tokenDuration:     cfg.App.TokenDuration,
		requestTimeout:    cfg.Server.RequestTimeout,
		allowedOrigins:    cfg.Server.AllowedOrigins,
		traceIDGenerator:  utils.NewUUIDGenerator(),
		logger:            logger,
	}
}
