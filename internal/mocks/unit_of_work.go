package mocks

import (
	"context"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// UnitOfWork implements store.UnitOfWork for testing.
// Do invokes the callback with the same unit of work, so expectations set on
// the repository mocks apply inside and outside of transactions alike.
type UnitOfWork struct {
	ServiceRepo *Repository[domain.Service]
	UserRepo    *Repository[domain.User]
	RoleRepo    *Repository[domain.Role]

	// BeginErr, when set, is returned by Do without running the callback
	BeginErr error

	// DoCalls counts invocations of Do
	DoCalls int
}

// NewUnitOfWork creates a UnitOfWork with empty repository mocks
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		ServiceRepo: new(Repository[domain.Service]),
		UserRepo:    new(Repository[domain.User]),
		RoleRepo:    new(Repository[domain.Role]),
	}
}

// Services implements store.UnitOfWork.Services
func (m *UnitOfWork) Services() store.Repository[domain.Service] { return m.ServiceRepo }

// Users implements store.UnitOfWork.Users
func (m *UnitOfWork) Users() store.Repository[domain.User] { return m.UserRepo }

// Roles implements store.UnitOfWork.Roles
func (m *UnitOfWork) Roles() store.Repository[domain.Role] { return m.RoleRepo }

// Do implements store.UnitOfWork.Do
func (m *UnitOfWork) Do(ctx context.Context, fn store.UnitOfWorkFn) error {
	m.DoCalls++
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(ctx, m)
}

var _ store.UnitOfWork = (*UnitOfWork)(nil)
