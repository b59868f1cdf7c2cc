package http

import (
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/service"
)

type Handler struct {
	services  *service.Services
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, staticDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		staticDir: staticDir,
		logger:    logger,
	}
}
