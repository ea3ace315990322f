package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// UnitOfWork implements store.UnitOfWork on top of a PostgreSQL connection pool.
type UnitOfWork struct {
	// db is nil when the unit of work is bound to a transaction
	db     *sql.DB
	logger *slog.Logger

	services *Repository[domain.Service]
	users    *Repository[domain.User]
	roles    *Repository[domain.Role]
}

// Ensure UnitOfWork implements store.UnitOfWork interface
var _ store.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a unit of work whose repositories use db directly.
func NewUnitOfWork(db *sql.DB, logger *slog.Logger) *UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}

	return &UnitOfWork{
		db:       db,
		logger:   logger.With(slog.String("component", "unit_of_work")),
		services: NewServiceRepository(db, logger),
		users:    NewUserRepository(db, logger),
		roles:    NewRoleRepository(db, logger),
	}
}

// Services implements store.UnitOfWork.Services.
func (u *UnitOfWork) Services() store.Repository[domain.Service] { return u.services }

// Users implements store.UnitOfWork.Users.
func (u *UnitOfWork) Users() store.Repository[domain.User] { return u.users }

// Roles implements store.UnitOfWork.Roles.
func (u *UnitOfWork) Roles() store.Repository[domain.Role] { return u.roles }

// Do implements store.UnitOfWork.Do.
func (u *UnitOfWork) Do(ctx context.Context, fn store.UnitOfWorkFn) error {
	if u.db == nil {
		return fn(ctx, u)
	}

	return store.RunInTransaction(ctx, u.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, u.withTx(tx))
	})
}

func (u *UnitOfWork) withTx(tx *sql.Tx) *UnitOfWork {
	return &UnitOfWork{
		logger:   u.logger,
		services: u.services.WithTx(tx),
		users:    u.users.WithTx(tx),
		roles:    u.roles.WithTx(tx),
	}
}
