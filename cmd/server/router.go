package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/agency-api/internal/api"
	apiMiddleware "github.com/phrazzld/agency-api/internal/api/middleware"
)

// healthPingTimeout bounds the database check made by /health.
const healthPingTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	serviceHandler := api.NewServiceHandler(app.serviceService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	roleHandler := api.NewRoleHandler(app.roleService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/services", func(r chi.Router) {
			r.Get("/", serviceHandler.ListServices)
			r.Post("/", serviceHandler.CreateService)
			r.Get("/{id}", serviceHandler.GetService)
			r.Put("/{id}", serviceHandler.UpdateService)
			r.Delete("/{id}", serviceHandler.DeleteService)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/roles", func(r chi.Router) {
			r.Get("/", roleHandler.ListRoles)
			r.Post("/", roleHandler.CreateRole)
			r.Get("/{id}", roleHandler.GetRole)
			r.Put("/{id}", roleHandler.UpdateRole)
			r.Delete("/{id}", roleHandler.DeleteRole)
		})
	})

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports 200 when the server is up and, if a database is
// configured, reachable.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := app.db.PingContext(ctx); err != nil {
			app.logger.Warn("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
