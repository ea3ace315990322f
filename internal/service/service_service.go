package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// ServiceService manages the offerings the agency sells.
type ServiceService interface {
	// GetServices returns every service in store order.
	GetServices(ctx context.Context) ([]ServiceDTO, error)

	// GetServiceByID returns the service with the given ID.
	// Returns an error wrapping store.ErrServiceNotFound if it does not exist.
	GetServiceByID(ctx context.Context, id int64) (*ServiceDTO, error)

	// AddService stores a new service and returns it with its assigned ID.
	// Any ID set on dto is ignored.
	AddService(ctx context.Context, dto ServiceDTO) (*ServiceDTO, error)

	// UpdateService overwrites the attributes of an existing service.
	// The lookup and the write run in one transaction.
	UpdateService(ctx context.Context, id int64, dto ServiceDTO) error

	// RemoveServiceByID deletes an existing service.
	// Returns an error wrapping store.ErrServiceNotFound if it does not exist.
	RemoveServiceByID(ctx context.Context, id int64) error
}

// serviceServiceImpl implements ServiceService
type serviceServiceImpl struct {
	uow    store.UnitOfWork
	logger *slog.Logger
}

// NewServiceService creates a new ServiceService
func NewServiceService(uow store.UnitOfWork, logger *slog.Logger) ServiceService {
	if uow == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("uow cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &serviceServiceImpl{
		uow:    uow,
		logger: logger.With("component", "service_service"),
	}
}

// GetServices implements ServiceService.GetServices
func (s *serviceServiceImpl) GetServices(ctx context.Context) ([]ServiceDTO, error) {
	services, err := s.uow.Services().GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	result := make([]ServiceDTO, 0, len(services))
	for _, svc := range services {
		result = append(result, serviceToDTO(svc))
	}

	s.logger.Debug("listed services", "count", len(result))
	return result, nil
}

// GetServiceByID implements ServiceService.GetServiceByID
func (s *serviceServiceImpl) GetServiceByID(ctx context.Context, id int64) (*ServiceDTO, error) {
	svc, err := s.uow.Services().GetOne(ctx, store.ByID(id))
	if err != nil {
		s.logLookupError(err, id)
		return nil, fmt.Errorf("failed to retrieve service: %w", err)
	}

	dto := serviceToDTO(svc)
	return &dto, nil
}

// AddService implements ServiceService.AddService
func (s *serviceServiceImpl) AddService(ctx context.Context, dto ServiceDTO) (*ServiceDTO, error) {
	svc := &domain.Service{}
	applyServiceDTO(svc, dto)

	if err := s.uow.Services().Create(ctx, svc); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			s.logger.Debug("rejected invalid service", "error", err, "name", dto.Name)
		} else {
			s.logger.Error("failed to create service", "error", err, "name", dto.Name)
		}
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.logger.Info("service created", "service_id", svc.ID)

	created := serviceToDTO(svc)
	return &created, nil
}

// UpdateService implements ServiceService.UpdateService
func (s *serviceServiceImpl) UpdateService(ctx context.Context, id int64, dto ServiceDTO) error {
	return s.uow.Do(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		svc, err := uow.Services().GetOne(ctx, store.ByID(id))
		if err != nil {
			s.logLookupError(err, id)
			return fmt.Errorf("failed to retrieve service for update: %w", err)
		}

		applyServiceDTO(svc, dto)

		if err := uow.Services().Update(ctx, svc); err != nil {
			s.logger.Error("failed to update service", "error", err, "service_id", id)
			return fmt.Errorf("failed to update service: %w", err)
		}

		s.logger.Info("service updated", "service_id", id)
		return nil
	})
}

// RemoveServiceByID implements ServiceService.RemoveServiceByID
func (s *serviceServiceImpl) RemoveServiceByID(ctx context.Context, id int64) error {
	return s.uow.Do(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		svc, err := uow.Services().GetOne(ctx, store.ByID(id))
		if err != nil {
			s.logLookupError(err, id)
			return fmt.Errorf("failed to retrieve service for removal: %w", err)
		}

		if err := uow.Services().Remove(ctx, svc); err != nil {
			s.logger.Error("failed to remove service", "error", err, "service_id", id)
			return fmt.Errorf("failed to remove service: %w", err)
		}

		s.logger.Info("service removed", "service_id", id)
		return nil
	})
}

func (s *serviceServiceImpl) logLookupError(err error, id int64) {
	if store.IsNotFoundError(err) {
		s.logger.Debug("service not found", "service_id", id)
		return
	}
	s.logger.Error("failed to retrieve service", "error", err, "service_id", id)
}
