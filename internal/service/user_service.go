package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// UserService provides user management operations
type UserService interface {
	// GetUsers returns every user in store order
	GetUsers(ctx context.Context) ([]UserDTO, error)

	// GetUserByID retrieves a user by their ID
	GetUserByID(ctx context.Context, id int64) (*UserDTO, error)

	// AddUser creates a new user and returns it with its assigned ID
	AddUser(ctx context.Context, dto UserDTO) (*UserDTO, error)

	// UpdateUser replaces a user's name, email and role.
	// Following the pattern of getting the complete user first, then updating
	// the fields, and finally passing the complete user back to the store
	UpdateUser(ctx context.Context, id int64, dto UserDTO) error

	// RemoveUserByID deletes a user by their ID
	RemoveUserByID(ctx context.Context, id int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	uow    store.UnitOfWork
	logger *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(uow store.UnitOfWork, logger *slog.Logger) UserService {
	if uow == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("uow cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		uow:    uow,
		logger: logger.With("component", "user_service"),
	}
}

// GetUsers returns every user in store order
func (s *UserServiceImpl) GetUsers(ctx context.Context) ([]UserDTO, error) {
	users, err := s.uow.Users().GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, userToDTO(u))
	}

	return result, nil
}

// GetUserByID retrieves a user by their ID
func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int64) (*UserDTO, error) {
	user, err := s.uow.Users().GetOne(ctx, store.ByID(id))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", id)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", id)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	s.logger.Debug("retrieved user successfully", "user_id", id)

	dto := userToDTO(user)
	return &dto, nil
}

// AddUser creates a new user and returns it with its assigned ID
func (s *UserServiceImpl) AddUser(ctx context.Context, dto UserDTO) (*UserDTO, error) {
	user := &domain.User{}
	applyUserDTO(user, dto)

	if err := s.uow.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email",
				"email", dto.Email)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"email", dto.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created successfully",
		"user_id", user.ID,
		"email", user.Email)

	created := userToDTO(user)
	return &created, nil
}

// UpdateUser replaces a user's name, email and role.
// The lookup and the write share one transaction.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, dto UserDTO) error {
	return s.uow.Do(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		// First, retrieve the current user to get the complete user object
		user, err := uow.Users().GetOne(ctx, store.ByID(id))
		if err != nil {
			s.logger.Error("failed to retrieve user for update",
				"error", err,
				"user_id", id)
			return fmt.Errorf("failed to retrieve user for update: %w", err)
		}

		applyUserDTO(user, dto)

		if err := uow.Users().Update(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				s.logger.Debug("attempted to update to an existing email",
					"user_id", id,
					"new_email", dto.Email)
			} else {
				s.logger.Error("failed to update user",
					"error", err,
					"user_id", id)
			}
			return fmt.Errorf("failed to update user: %w", err)
		}

		s.logger.Info("user updated successfully in transaction", "user_id", id)
		return nil
	})
}

// RemoveUserByID deletes a user by their ID
func (s *UserServiceImpl) RemoveUserByID(ctx context.Context, id int64) error {
	return s.uow.Do(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		user, err := uow.Users().GetOne(ctx, store.ByID(id))
		if err != nil {
			s.logger.Error("failed to retrieve user for removal",
				"error", err,
				"user_id", id)
			return fmt.Errorf("failed to retrieve user for removal: %w", err)
		}

		if err := uow.Users().Remove(ctx, user); err != nil {
			s.logger.Error("failed to remove user",
				"error", err,
				"user_id", id)
			return fmt.Errorf("failed to remove user: %w", err)
		}

		s.logger.Info("user removed successfully in transaction", "user_id", id)
		return nil
	})
}
