package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/meshdrive/meshdrive/internal/client"
	"github.com/meshdrive/meshdrive/internal/config"
	"github.com/meshdrive/meshdrive/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetMobileConfig()
	if err != nil {
		logger.NewLogger("mobile").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("mobile", cfg.Client.StateDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.New(cfg.Client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sync client")
	}

	app.Start()
	log.Info().Str("server", cfg.Client.ServerURL).Msg("sync client started")

	go drainEvents(app, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	<-ctx.Done()

	app.Stop()
	log.Info().Msg("sync client stopped")
}

// drainEvents logs the event stream. An embedding UI would consume the
// channel instead.
func drainEvents(app *client.Client, log *logger.Logger) {
	for e := range app.Events() {
		switch e := e.(type) {
		case client.ErrorEvent:
			log.Warn().Str("message", e.Message).Msg("client error")
		default:
			log.Debug().Msgf("event %T", e)
		}
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
