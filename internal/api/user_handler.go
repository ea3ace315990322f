package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/agency-api/internal/api/shared"
	"github.com/phrazzld/agency-api/internal/platform/logger"
	"github.com/phrazzld/agency-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if users == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("users cannot be nil for UserHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.GetUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "user_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "user_handler")

	var req UserRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	created, err := h.users.AddUser(r.Context(), req.toDTO())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	log.Info("user created", slog.Int64("user_id", created.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdateUser handles PUT /users/{id} requests
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "user_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req UserRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if err := h.users.UpdateUser(r.Context(), id, req.toDTO()); err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/{id} requests
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "user_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.users.RemoveUserByID(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	w.WriteHeader(http.StatusNoContent)
}
