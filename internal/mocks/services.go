package mocks

import (
	"context"

	"github.com/phrazzld/agency-api/internal/service"
)

// MockServiceService implements service.ServiceService for testing
type MockServiceService struct {
	GetServicesFn       func(ctx context.Context) ([]service.ServiceDTO, error)
	GetServiceByIDFn    func(ctx context.Context, id int64) (*service.ServiceDTO, error)
	AddServiceFn        func(ctx context.Context, dto service.ServiceDTO) (*service.ServiceDTO, error)
	UpdateServiceFn     func(ctx context.Context, id int64, dto service.ServiceDTO) error
	RemoveServiceByIDFn func(ctx context.Context, id int64) error

	// Default return values
	Services     []service.ServiceDTO
	Service      *service.ServiceDTO
	DefaultError error
}

// GetServices implements the ServiceService.GetServices method
func (m *MockServiceService) GetServices(ctx context.Context) ([]service.ServiceDTO, error) {
	if m.GetServicesFn != nil {
		return m.GetServicesFn(ctx)
	}
	return m.Services, m.DefaultError
}

// GetServiceByID implements the ServiceService.GetServiceByID method
func (m *MockServiceService) GetServiceByID(ctx context.Context, id int64) (*service.ServiceDTO, error) {
	if m.GetServiceByIDFn != nil {
		return m.GetServiceByIDFn(ctx, id)
	}
	return m.Service, m.DefaultError
}

// AddService implements the ServiceService.AddService method
func (m *MockServiceService) AddService(ctx context.Context, dto service.ServiceDTO) (*service.ServiceDTO, error) {
	if m.AddServiceFn != nil {
		return m.AddServiceFn(ctx, dto)
	}
	return m.Service, m.DefaultError
}

// UpdateService implements the ServiceService.UpdateService method
func (m *MockServiceService) UpdateService(ctx context.Context, id int64, dto service.ServiceDTO) error {
	if m.UpdateServiceFn != nil {
		return m.UpdateServiceFn(ctx, id, dto)
	}
	return m.DefaultError
}

// RemoveServiceByID implements the ServiceService.RemoveServiceByID method
func (m *MockServiceService) RemoveServiceByID(ctx context.Context, id int64) error {
	if m.RemoveServiceByIDFn != nil {
		return m.RemoveServiceByIDFn(ctx, id)
	}
	return m.DefaultError
}

// MockUserService implements service.UserService for testing
type MockUserService struct {
	GetUsersFn       func(ctx context.Context) ([]service.UserDTO, error)
	GetUserByIDFn    func(ctx context.Context, id int64) (*service.UserDTO, error)
	AddUserFn        func(ctx context.Context, dto service.UserDTO) (*service.UserDTO, error)
	UpdateUserFn     func(ctx context.Context, id int64, dto service.UserDTO) error
	RemoveUserByIDFn func(ctx context.Context, id int64) error

	Users        []service.UserDTO
	User         *service.UserDTO
	DefaultError error
}

// GetUsers implements the UserService.GetUsers method
func (m *MockUserService) GetUsers(ctx context.Context) ([]service.UserDTO, error) {
	if m.GetUsersFn != nil {
		return m.GetUsersFn(ctx)
	}
	return m.Users, m.DefaultError
}

// GetUserByID implements the UserService.GetUserByID method
func (m *MockUserService) GetUserByID(ctx context.Context, id int64) (*service.UserDTO, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, id)
	}
	return m.User, m.DefaultError
}

// AddUser implements the UserService.AddUser method
func (m *MockUserService) AddUser(ctx context.Context, dto service.UserDTO) (*service.UserDTO, error) {
	if m.AddUserFn != nil {
		return m.AddUserFn(ctx, dto)
	}
	return m.User, m.DefaultError
}

// UpdateUser implements the UserService.UpdateUser method
func (m *MockUserService) UpdateUser(ctx context.Context, id int64, dto service.UserDTO) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, dto)
	}
	return m.DefaultError
}

// RemoveUserByID implements the UserService.RemoveUserByID method
func (m *MockUserService) RemoveUserByID(ctx context.Context, id int64) error {
	if m.RemoveUserByIDFn != nil {
		return m.RemoveUserByIDFn(ctx, id)
	}
	return m.DefaultError
}

// MockRoleService implements service.RoleService for testing
type MockRoleService struct {
	GetRolesFn       func(ctx context.Context) ([]service.RoleDTO, error)
	GetRoleByIDFn    func(ctx context.Context, id int64) (*service.RoleDTO, error)
	AddRoleFn        func(ctx context.Context, dto service.RoleDTO) (*service.RoleDTO, error)
	UpdateRoleFn     func(ctx context.Context, id int64, dto service.RoleDTO) error
	RemoveRoleByIDFn func(ctx context.Context, id int64) error

	Roles        []service.RoleDTO
	Role         *service.RoleDTO
	DefaultError error
}

// GetRoles implements the RoleService.GetRoles method
func (m *MockRoleService) GetRoles(ctx context.Context) ([]service.RoleDTO, error) {
	if m.GetRolesFn != nil {
		return m.GetRolesFn(ctx)
	}
	return m.Roles, m.DefaultError
}

// GetRoleByID implements the RoleService.GetRoleByID method
func (m *MockRoleService) GetRoleByID(ctx context.Context, id int64) (*service.RoleDTO, error) {
	if m.GetRoleByIDFn != nil {
		return m.GetRoleByIDFn(ctx, id)
	}
	return m.Role, m.DefaultError
}

// AddRole implements the RoleService.AddRole method
func (m *MockRoleService) AddRole(ctx context.Context, dto service.RoleDTO) (*service.RoleDTO, error) {
	if m.AddRoleFn != nil {
		return m.AddRoleFn(ctx, dto)
	}
	return m.Role, m.DefaultError
}

// UpdateRole implements the RoleService.UpdateRole method
func (m *MockRoleService) UpdateRole(ctx context.Context, id int64, dto service.RoleDTO) error {
	if m.UpdateRoleFn != nil {
		return m.UpdateRoleFn(ctx, id, dto)
	}
	return m.DefaultError
}

// RemoveRoleByID implements the RoleService.RemoveRoleByID method
func (m *MockRoleService) RemoveRoleByID(ctx context.Context, id int64) error {
	if m.RemoveRoleByIDFn != nil {
		return m.RemoveRoleByIDFn(ctx, id)
	}
	return m.DefaultError
}

var (
	_ service.ServiceService = (*MockServiceService)(nil)
	_ service.UserService    = (*MockUserService)(nil)
	_ service.RoleService    = (*MockRoleService)(nil)
)
