package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/agency-api/internal/api/shared"
	"github.com/phrazzld/agency-api/internal/platform/logger"
	"github.com/phrazzld/agency-api/internal/service"
)

// ServiceHandler handles HTTP requests for agency services
type ServiceHandler struct {
	services service.ServiceService
	logger   *slog.Logger
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(services service.ServiceService, logger *slog.Logger) *ServiceHandler {
	if services == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("services cannot be nil for ServiceHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ServiceHandler")
	}

	return &ServiceHandler{
		services: services,
		logger:   logger.With(slog.String("component", "service_handler")),
	}
}

// ListServices handles GET /services requests
func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.GetServices(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list services")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, services)
}

// GetService handles GET /services/{id} requests
func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "service_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	svc, err := h.services.GetServiceByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get service")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, svc)
}

// CreateService handles POST /services requests
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "service_handler")

	var req ServiceRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	created, err := h.services.AddService(r.Context(), req.toDTO())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create service")
		return
	}

	log.Info("service created", slog.Int64("service_id", created.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/services/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// UpdateService handles PUT /services/{id} requests
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "service_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req ServiceRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if err := h.services.UpdateService(r.Context(), id, req.toDTO()); err != nil {
		HandleAPIError(w, r, err, "Failed to update service")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteService handles DELETE /services/{id} requests
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	log := logger.ForComponent(r.Context(), h.logger, "service_handler")

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.services.RemoveServiceByID(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete service")
		return
	}

	log.Info("service deleted", slog.Int64("service_id", id))
	w.WriteHeader(http.StatusNoContent)
}
