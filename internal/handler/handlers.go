package handler

import (
	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/handler/http"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.StaticDir, logger),
	}, nil
}
