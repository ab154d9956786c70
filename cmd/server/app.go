package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tasktrack/tasktrack/internal/api"
	"github.com/tasktrack/tasktrack/internal/config"
	"github.com/tasktrack/tasktrack/internal/platform/sqlite"
	"github.com/tasktrack/tasktrack/internal/service"
	"github.com/tasktrack/tasktrack/internal/service/auth"
)

// application holds the initialized dependencies of the server process.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	tokenService auth.TokenService
	taskService  service.TaskService
	authHandler  *api.AuthHandler
	taskHandler  *api.TaskHandler
}

// newApplication wires every component from configuration: database and
// schema, token service, task service, and the HTTP handlers.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Info("database initialized", "path", cfg.Database.Path)

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	taskStore := sqlite.NewSQLiteTaskStore(db)

	taskService, err := service.NewTaskService(taskStore, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize task service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       log,
		db:           db,
		tokenService: tokenService,
		taskService:  taskService,
		authHandler:  api.NewAuthHandler(tokenService, log),
		taskHandler:  api.NewTaskHandler(taskService, log),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
