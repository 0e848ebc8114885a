package main

import (
	"context"
	"fmt"

	"github.com/mkarev/go-dataset-hub/internal/adapter"
	"github.com/mkarev/go-dataset-hub/internal/config"
	"github.com/mkarev/go-dataset-hub/internal/handler"
	"github.com/mkarev/go-dataset-hub/internal/logger"
	"github.com/mkarev/go-dataset-hub/internal/server"
	"github.com/mkarev/go-dataset-hub/internal/service"
	"github.com/mkarev/go-dataset-hub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dataset-hub-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	engine := newEngineAdapter(cfg.Engine, log)

	services := service.NewServices(storages, engine, cfg.App, log)

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

// newEngineAdapter selects the index backend client. Deployments without an
// engine URL run record-only: lifecycle transitions still persist, the
// resource calls become no-ops.
func newEngineAdapter(cfg config.Engine, log *logger.Logger) adapter.EngineAdapter {
	if cfg.BaseURL == "" {
		log.Info().Msg("no engine URL configured, index operations disabled")
		return adapter.NewNoopEngineAdapter(log)
	}
	return adapter.NewHTTPEngineAdapter(cfg, log)
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
