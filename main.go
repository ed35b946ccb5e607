package main

import (
	"fmt"
	"os"

	"github.com/HydJing/status-service/internal/api"
	"github.com/HydJing/status-service/internal/config"
	"github.com/HydJing/status-service/internal/handler"
	"github.com/HydJing/status-service/internal/health"
	"github.com/HydJing/status-service/internal/logger"
	"github.com/HydJing/status-service/internal/profiling"
	"github.com/HydJing/status-service/internal/telemetry"

	"github.com/gin-gonic/gin"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Start profiling servers (if enabled)
	profiling.StartPprofServer()

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	// Continuous profiling (if enabled)
	profiler, err := profiling.StartPyroscope(cfg.Service.Name, cfg.Service.Version)
	if err != nil {
		log.Warn("Continuous profiling unavailable", logger.Error(err))
	}
	defer func() { _ = profiler.Stop() }()

	return runServer(cfg, log)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// runServer creates all dependencies and starts the HTTP server.
func runServer(cfg *config.Config, log logger.Logger) int {
	// Sub-check registry: the extension point for dependency probes.
	// Nothing is registered today; register checks here before the
	// server starts, e.g.
	//
	//	registry.Register("upstream", health.HTTPCheck(url, nil))
	registry := health.NewRegistry()

	evaluator := health.NewEvaluator(cfg.Service.Version, cfg.Service.Environment)
	tel := telemetry.NewProvider(cfg.Service.Name)

	greeting := handler.NewGreetingHandler(cfg.Service.Version)
	healthHandler := handler.NewHealthHandler(evaluator, registry)

	server := api.NewServer(cfg, log, func(router *gin.Engine) {
		api.SetupRoutes(router, greeting, healthHandler, tel)
	})

	log.Info("Status service starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("environment", cfg.Service.Environment),
		logger.Bool("debug", cfg.Service.Debug),
		logger.Int("health_checks", registry.Len()),
	)

	if err := server.Run(); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Status service exited cleanly")
	return 0
}
