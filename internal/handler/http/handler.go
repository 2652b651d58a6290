package http

import (
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
