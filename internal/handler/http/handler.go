package http

import (
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
)

type Handler struct {
	services *service.Services

	// routePrefix is prepended to the /auth and /notes groups.
	routePrefix string

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("route_prefix", cfg.RoutePrefix).Msg("http handler created")
	return &Handler{
		services:       services,
		routePrefix:    cfg.RoutePrefix,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
