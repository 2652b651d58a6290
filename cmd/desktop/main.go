package main

import (
	"context"
	"fmt"

	"github.com/meshdrive/meshdrive/internal/config"
	httphandler "github.com/meshdrive/meshdrive/internal/handler/http"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/server"
	"github.com/meshdrive/meshdrive/internal/service"
	"github.com/meshdrive/meshdrive/internal/store"
	"github.com/meshdrive/meshdrive/internal/tailnet"
	"github.com/meshdrive/meshdrive/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("desktop")
	cfg, err := config.GetDesktopConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	backend, err := tailnet.NewClient(cfg.Tailnet, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating tailnet client")
	}

	services := service.NewServices(backend, storages, cfg.Storage, log)
	handler := httphandler.NewHandler(services, log)

	background := workers.New(
		workers.NewBusWatcher(backend, services.Transfer, cfg.Tailnet.RefreshInterval, log),
		workers.NewInboxPoller(services.Transfer, cfg.Tailnet.RefreshInterval, log),
		workers.NewPeerRefresher(services.Transfer, cfg.Tailnet.RefreshInterval, log),
	)

	srv, err := server.NewServer(handler.Init(), background, cfg.Server, log)
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
