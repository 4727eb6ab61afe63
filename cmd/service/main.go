// Package main is the entry point for the exercises service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/exercises-service/internal/adapters/filestore"
	"github.com/jsamuelsen/exercises-service/internal/adapters/http"
	"github.com/jsamuelsen/exercises-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/exercises-service/internal/app"
	"github.com/jsamuelsen/exercises-service/internal/platform/config"
	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
	"github.com/jsamuelsen/exercises-service/internal/platform/telemetry"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()
	if telProvider.Enabled() {
		logger.Info("telemetry exporting", slog.String("endpoint", cfg.Telemetry.Endpoint))
	}

	metrics, err := telemetry.NewExerciseMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering exercise metrics: %w", err)
	}

	files, err := filestore.New(cfg.Exercises.Root, logger)
	if err != nil {
		return fmt.Errorf("opening exercise root: %w", err)
	}
	defer func() { _ = files.Close() }()

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(files); err != nil {
		return fmt.Errorf("registering file store health check: %w", err)
	}

	exec := app.NewExecutor(logger, metrics)
	quaternionService := app.NewQuaternionService(app.QuaternionServiceConfig{
		Executor: exec,
		MaxBatch: cfg.Exercises.MaxBatch,
		Logger:   logger,
	})
	exerciseService := app.NewExerciseService(app.ExerciseServiceConfig{
		Files:     files,
		Executor:  exec,
		MaxPowers: cfg.Exercises.MaxPowers,
		MaxFiles:  cfg.Exercises.MaxFiles,
		Logger:    logger,
	})

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewDefaultRouterConfig(
		&cfg.App,
		&cfg.Auth,
		handlers.NewHealthHandler(healthRegistry, buildInfo),
		handlers.NewQuaternionHandler(quaternionService),
		handlers.NewExerciseHandler(exerciseService),
	))

	serverErr, err := server.Start()
	if err != nil {
		return err
	}
	logger.Info("listening", slog.String("addr", server.Addr()))

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until SIGINT, SIGTERM or a server error, then
// drains in-flight requests within shutdownTimeout.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
