package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agency-api/internal/platform/postgres"
)

// supportedMigrationCommands lists the goose commands accepted by -migrate.
var supportedMigrationCommands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"version": true,
	"reset":   true,
	"redo":    true,
}

// validateMigrationCommand rejects commands -migrate does not support before
// any connection is attempted.
func validateMigrationCommand(command string) error {
	if !supportedMigrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q", command)
	}
	return nil
}

// handleMigrations executes a migration command against db.
// It's called from run() when the -migrate flag is set.
func handleMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if err := validateMigrationCommand(command); err != nil {
		return err
	}

	logger.Info("Executing migrations", "command", command)

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("Migrations completed", "command", command)
	return nil
}
