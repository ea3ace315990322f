package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// RoleService manages the roles users can hold.
type RoleService interface {
	GetRoles(ctx context.Context) ([]RoleDTO, error)
	GetRoleByID(ctx context.Context, id int64) (*RoleDTO, error)
	AddRole(ctx context.Context, dto RoleDTO) (*RoleDTO, error)
	UpdateRole(ctx context.Context, id int64, dto RoleDTO) error
	// RemoveRoleByID deletes a role. Users holding it keep existing with no role.
	RemoveRoleByID(ctx context.Context, id int64) error
}

type roleServiceImpl struct {
	uow    store.UnitOfWork
	logger *slog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(uow store.UnitOfWork, logger *slog.Logger) RoleService {
	if uow == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("uow cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &roleServiceImpl{
		uow:    uow,
		logger: logger.With("component", "role_service"),
	}
}

func (s *roleServiceImpl) GetRoles(ctx context.Context) ([]RoleDTO, error) {
	roles, err := s.uow.Roles().GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	result := make([]RoleDTO, 0, len(roles))
	for _, r := range roles {
		result = append(result, roleToDTO(r))
	}
	return result, nil
}

func (s *roleServiceImpl) GetRoleByID(ctx context.Context, id int64) (*RoleDTO, error) {
	role, err := s.uow.Roles().GetOne(ctx, store.ByID(id))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve role: %w", err)
	}

	dto := roleToDTO(role)
	return &dto, nil
}

func (s *roleServiceImpl) AddRole(ctx context.Context, dto RoleDTO) (*RoleDTO, error) {
	role := &domain.Role{}
	applyRoleDTO(role, dto)

	if err := s.uow.Roles().Create(ctx, role); err != nil {
		s.logger.Warn("failed to create role", "error", err, "name", dto.Name)
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)

	created := roleToDTO(role)
	return &created, nil
}

func (s *roleServiceImpl) UpdateRole(ctx context.Context, id int64, dto RoleDTO) error {
	return s.uow.Do(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		role, err := uow.Roles().GetOne(ctx, store.ByID(id))
		if err != nil {
			return fmt.Errorf("failed to retrieve role for update: %w", err)
		}

		applyRoleDTO(role, dto)

		if err := uow.Roles().Update(ctx, role); err != nil {
			s.logger.Warn("failed to update role", "error", err, "role_id", id)
			return fmt.Errorf("failed to update role: %w", err)
		}

		s.logger.Info("role updated", "role_id", id)
		return nil
	})
}

func (s *roleServiceImpl) RemoveRoleByID(ctx context.Context, id int64) error {
	return s.uow.Do(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		role, err := uow.Roles().GetOne(ctx, store.ByID(id))
		if err != nil {
			return fmt.Errorf("failed to retrieve role for removal: %w", err)
		}

		if err := uow.Roles().Remove(ctx, role); err != nil {
			s.logger.Error("failed to remove role", "error", err, "role_id", id)
			return fmt.Errorf("failed to remove role: %w", err)
		}

		s.logger.Info("role removed", "role_id", id)
		return nil
	})
}
