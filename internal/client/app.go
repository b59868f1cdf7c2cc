// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

package client

import (
	"context"
	"errors"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/store"
	"github.com/faithdive/faith-dive/internal/swcache"
	"github.com/faithdive/faith-dive/internal/tui"
	"github.com/faithdive/faith-dive/internal/workers"
)

type App struct {
	storages *store.Storages
	cache    *swcache.Manager
	workers  *workers.Workers
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the client runtime. The cache manager and workers are
// optional; the store and the UI are not.
func NewApp(storages *store.Storages, cache *swcache.Manager, ws *workers.Workers, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if storages == nil {
		return nil, errors.New("storages are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{storages: storages, cache: cache, workers: ws, ui: ui, logger: log}, nil
}

// Run primes the offline asset cache, starts the background workers and
// blocks in the terminal UI until the user quits. A failed cache install
// is a warning, not a fatal error: the previous generation keeps serving.
func (a *App) Run() error {
	ctx := context.Background()

	if a.cache != nil {
		if err := a.cache.Install(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("offline cache install failed, keeping current assets")
		} else if err = a.cache.Activate(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("offline cache activation failed")
		}
		defer a.cache.Close()
	}

	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	defer a.storages.DB.Close()

	return a.ui.Run(ctx)
}
