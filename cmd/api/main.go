package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/udi/talleres-api/internal/app"
	"github.com/udi/talleres-api/internal/config"
	"github.com/udi/talleres-api/internal/logging"
	"github.com/udi/talleres-api/internal/seed"
	"github.com/udi/talleres-api/internal/storage/memory"
	transporthttp "github.com/udi/talleres-api/internal/transport/http"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:          "talleres-api",
		Short:        "HTTP API for workshops and their participants",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			if path := config.LoadDotEnv(bootLogger); path != "" {
				bootLogger.Info("loaded env file", "path", path)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides PORT)")
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	logCfg, err := cfg.Logging()
	if err != nil {
		return err
	}
	logger := logging.New(logCfg)

	store := memory.NewStore()
	workshopSvc := app.NewWorkshopService(memory.NewWorkshopRepository(store), app.WithLogger(logger))
	participantSvc := app.NewParticipantService(memory.NewParticipantRepository(store), app.WithLogger(logger))

	seeded, err := seed.Apply(ctx, workshopSvc, participantSvc)
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	logger.Info("store seeded", "workshops", seeded.Workshops, "participants", seeded.Participants)

	mux := transporthttp.NewRouter(workshopSvc, participantSvc, logger)
	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	logger.Info("api listening", "addr", cfg.Addr(), "url", "http://localhost:"+cfg.Port+"/api")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
