// Package main implements the entry point for the tasktrack API server,
// a bearer-token-authenticated task tracking service backed by an
// in-memory SQLite database.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/tasktrack/tasktrack/internal/config"
	"github.com/tasktrack/tasktrack/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(context.Background(), cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return app, nil
}
