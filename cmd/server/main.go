// Package main implements the entry point for the agency API server, which
// manages an agency's services, users, and roles over a JSON HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/agency-api/internal/config"
	"github.com/phrazzld/agency-api/internal/platform/logger"
)

// main is the entry point for the agency-api server.
// It loads configuration, sets up logging, connects to the database, and
// either runs a migration command or starts the HTTP server.
func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"run a database migration command (up, down, status, version, reset, redo) and exit",
	)
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

// run performs the core startup sequence. It is separated from main so that
// every failure is returned as an error and logged in one place.
func run(migrateCmd string) error {
	if migrateCmd != "" {
		if err := validateMigrationCommand(migrateCmd); err != nil {
			return err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"log_format", cfg.Server.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database connection", "error", err)
			}
		}()
		return handleMigrations(ctx, db, migrateCmd, log)
	}

	app := newApplication(cfg, log, db)
	return app.Run(ctx)
}
