package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/cli/config"
	controller "github.com/secmon-lab/ocelot/pkg/controller/http"
	"github.com/secmon-lab/ocelot/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg     config.Server
		graphCfg      config.Graph
		classifierCfg config.Classifier
		messagesCfg   config.Messages
	)

	flags := joinFlags(
		serverCfg.Flags(),
		graphCfg.Flags(),
		classifierCfg.Flags(),
		messagesCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting ocelot server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("graph", graphCfg),
				slog.Any("classifier", classifierCfg),
			)

			// Load reply texts (built-in defaults unless a file is given)
			messages, err := messagesCfg.Configure()
			if err != nil {
				return err
			}

			// Create Graph client and token source
			graphClient, tokenSource, err := graphCfg.Configure()
			if err != nil {
				return err
			}

			// Create classification gateway client
			classifierClient, err := classifierCfg.Configure()
			if err != nil {
				return err
			}

			// Create use case
			relayUC := usecase.NewRelay(tokenSource, graphClient, classifierClient, messages)

			// Create HTTP server
			server, err := controller.NewServer(ctx, serverCfg.Addr, relayUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
