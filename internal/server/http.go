package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
)

type httpServer struct {
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(h http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
