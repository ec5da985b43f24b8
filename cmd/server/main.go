// Package main implements the entry point for the Taskboard API server,
// which serves the task CRUD endpoints and pushes change notifications to
// WebSocket clients.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/taskboard-io/taskboard-api/internal/config"
	"github.com/taskboard-io/taskboard-api/internal/platform/logger"
	"github.com/taskboard-io/taskboard-api/internal/platform/postgres"
	"github.com/taskboard-io/taskboard-api/internal/service"
	"github.com/taskboard-io/taskboard-api/internal/ws"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run wires the application together: configuration, logging, database pool,
// schema migration, notification hub, service layer, and the HTTP server.
// Schema initialization completes (or fails the process) before the listener
// binds, so requests can never race table creation.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()
	appLogger.Info("Database connection established")

	if err := postgres.Migrate(cfg.Database.URL); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}
	appLogger.Info("Database schema initialized")

	hubCtx, cancelHub := context.WithCancel(ctx)
	defer cancelHub()

	hub := ws.NewHub(appLogger)
	go hub.Run(hubCtx)

	taskStore := postgres.NewTaskStore(pool)
	taskService := service.NewTaskService(taskStore, hub, appLogger)

	router := newRouter(taskService, hub, appLogger)

	return startHTTPServer(ctx, cfg.Server, router, appLogger)
}
