package main

import (
	"fmt"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/handler"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/server"
	"github.com/faithdive/faith-dive/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("faith-dive-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	bibleAPI, err := adapter.NewHTTPBibleAPI(cfg.BibleAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bible api adapter")
	}

	services, err := service.NewServices(bibleAPI, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
