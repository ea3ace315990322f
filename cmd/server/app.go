package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agency-api/internal/config"
	"github.com/phrazzld/agency-api/internal/platform/postgres"
	"github.com/phrazzld/agency-api/internal/service"
	"github.com/phrazzld/agency-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	uow store.UnitOfWork

	serviceService service.ServiceService
	userService    service.UserService
	roleService    service.RoleService
}

// newApplication wires the store and service layers on top of an open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.uow = postgres.NewUnitOfWork(db, logger)

	app.serviceService = service.NewServiceService(app.uow, logger)
	app.userService = service.NewUserService(app.uow, logger)
	app.roleService = service.NewRoleService(app.uow, logger)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
