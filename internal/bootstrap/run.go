package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/audioscribe/audioscribe/config"
)

// Run starts every enabled service and blocks until a shutdown signal arrives
// or a service fails. The HTTP server drains in-flight requests on shutdown;
// the worker finishes its current message before the receive loop stops.
func Run(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) error {
	if cfg == nil {
		return errors.New("app config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.IsHTTPServerEnabled() {
		server := StartHTTPServer(cfg, services, logger)
		g.Go(func() error {
			<-gctx.Done()
			return ShutdownHTTPServer(context.Background(), server, logger)
		})
	}

	if cfg.IsWorkerEnabled() {
		runner := NewWorkerRunner(cfg, services, logger)
		g.Go(func() error {
			logger.Info("starting worker", "concurrency", cfg.Worker.Concurrency, "engine", string(cfg.Worker.Engine))
			return runner.Run(gctx)
		})
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
