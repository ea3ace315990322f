package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/agency-api/internal/api/shared"
	"github.com/phrazzld/agency-api/internal/platform/logger"
	"github.com/phrazzld/agency-api/internal/service"
)

// RoleHandler handles role-related HTTP requests
type RoleHandler struct {
	roles  service.RoleService
	logger *slog.Logger
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roles service.RoleService, logger *slog.Logger) *RoleHandler {
	if roles == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("roles cannot be nil for RoleHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RoleHandler")
	}

	return &RoleHandler{
		roles:  roles,
		logger: logger.With(slog.String("component", "role_handler")),
	}
}

// ListRoles handles GET /roles requests
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.GetRoles(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list roles")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, roles)
}

// GetRole handles GET /roles/{id} requests
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, logger.ForComponent(r.Context(), h.logger, "role_handler"))
	if !ok {
		return
	}

	role, err := h.roles.GetRoleByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get role")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, role)
}

// CreateRole handles POST /roles requests
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "role_handler")

	var req RoleRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	created, err := h.roles.AddRole(r.Context(), req.toDTO())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create role")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/roles/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdateRole handles PUT /roles/{id} requests
func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "role_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req RoleRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if err := h.roles.UpdateRole(r.Context(), id, req.toDTO()); err != nil {
		HandleAPIError(w, r, err, "Failed to update role")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteRole handles DELETE /roles/{id} requests
func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r, logger.ForComponent(r.Context(), h.logger, "role_handler"))
	if !ok {
		return
	}

	if err := h.roles.RemoveRoleByID(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete role")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
