package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harithais/microbiome-explorer-app/internal/config"
	"github.com/harithais/microbiome-explorer-app/internal/dataset"
	"github.com/harithais/microbiome-explorer-app/internal/explore"
	"github.com/harithais/microbiome-explorer-app/internal/logging"
	"github.com/harithais/microbiome-explorer-app/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"dataset_path", cfg.Dataset.Path,
		"session_ttl", cfg.Session.TTL,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	// Load the reference table once at startup. It is immutable for the
	// lifetime of the process and shared across all sessions.
	reference, err := dataset.LoadReference(cfg.Dataset.Path)
	if err != nil {
		slog.Error("failed to load reference dataset", "path", cfg.Dataset.Path, "error", err)
		os.Exit(1)
	}
	slog.Info("reference dataset loaded", "path", cfg.Dataset.Path, "rows", len(reference))

	// Session store with background expiry sweep
	store := explore.NewStore(cfg.Session.TTL, cfg.Session.SweepInterval, cfg.Session.MaxCount)
	defer store.Close()

	server := web.NewServer(reference, store, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
