package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/erazemk/custodian/internal/api"
	"github.com/erazemk/custodian/internal/auth"
	"github.com/erazemk/custodian/internal/config"
	"github.com/erazemk/custodian/internal/docstore"
	"github.com/erazemk/custodian/internal/logging"
	"github.com/erazemk/custodian/internal/metrics"
	"github.com/erazemk/custodian/internal/store"
)

// shutdownTimeout bounds graceful shutdown and the final save.
const shutdownTimeout = 5 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Load the store from the configured backend and serve the JSON API.
The store is saved on shutdown (SIGINT or SIGTERM).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, nil)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// loadConfig reads the config file and the command's flags, then validates.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runServe serves until ctx is cancelled. If ready is non-nil it receives the
// bound listen address once the server accepts connections.
func runServe(ctx context.Context, cfg config.Config, ready chan<- string) error {
	logger, closeLog, err := logging.Setup(logging.Options{Format: cfg.LogFormat, Path: cfg.LogPath})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLog()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	backend, err := docstore.Open(ctx, cfg.Docstore())
	if err != nil {
		return fmt.Errorf("opening document backend: %w", err)
	}
	defer backend.Close()

	m := metrics.New()
	s := store.New(
		store.WithBackend(backend),
		store.WithLogger(logger),
		store.WithMetrics(m),
	)
	if err := s.Load(ctx); err != nil {
		return err
	}

	secret := cfg.JWTSecret
	if secret == "" {
		if secret, err = s.TokenSecret(ctx); err != nil {
			return fmt.Errorf("loading token secret: %w", err)
		}
	}

	router := api.NewRouter(api.Config{
		Store:     s,
		JWTSecret: secret,
		Revoker:   auth.NewRevoker(),
		Metrics:   m,
		Location:  loc,
		Autosave:  cfg.Autosave,
	})

	server := &http.Server{
		Handler:           api.LoggingMiddleware(router),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	logger.Info("server started", "addr", ln.Addr().String(), "backend", backend.Driver(), "autosave", cfg.Autosave)
	if ready != nil {
		ready <- ln.Addr().String()
	}

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := s.Save(shutdownCtx); err != nil {
		logging.LogError(logger, "failed to save store on shutdown", err)
		return err
	}

	slog.Info("server stopped, store saved")
	return nil
}
