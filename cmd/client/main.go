package main

import (
	"context"
	"fmt"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/client"
	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/store"
	"github.com/faithdive/faith-dive/internal/swcache"
	"github.com/faithdive/faith-dive/internal/tui"
	"github.com/faithdive/faith-dive/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("faith-dive-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	bibleAPI, err := adapter.NewServerBibleAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	var cache *swcache.Manager
	if cfg.Storage.CacheDir != "" {
		cache, err = swcache.NewManager(swcache.Options{
			Version:        cfg.Version,
			CacheDir:       cfg.Storage.CacheDir,
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		}, log)
		if err != nil {
			log.Warn().Err(err).Msg("offline cache disabled")
		}
	}

	checker := workers.NewUpdateChecker(
		cfg.Adapter.ServerURL,
		cfg.Version,
		cfg.Workers.UpdateCheckInterval,
		func(version string) {
			log.Info().Str("version", version).Msg("a newer server version is available")
		},
		log,
	)

	ui, err := tui.New(storages, bibleAPI, cfg.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(storages, cache, workers.NewWorkers(checker), ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
