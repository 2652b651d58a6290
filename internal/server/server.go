package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/meshdrive/meshdrive/internal/config"
	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the desktop runtime: the HTTP transport plus the overlay
// workers. background may be nil when no workers are wired (tests).
func NewServer(handler http.Handler, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		workers:    background,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		s.workers.Run(ctx)
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed

	if s.workers != nil {
		s.workers.Wait()
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
