package store

import (
	"context"

	"github.com/phrazzld/agency-api/internal/domain"
)

// UnitOfWorkFn is executed by UnitOfWork.Do with a unit of work whose
// repositories all share one transaction.
type UnitOfWorkFn func(ctx context.Context, uow UnitOfWork) error

// UnitOfWork aggregates the repositories of every entity kind.
//
// Repositories obtained directly from a UnitOfWork run outside of any
// transaction. Repositories obtained from the UnitOfWork passed to a Do
// callback share that callback's transaction: it commits when the callback
// returns nil and rolls back when it returns an error or panics.
type UnitOfWork interface {
	// Services returns the repository for agency services.
	Services() Repository[domain.Service]

	// Users returns the repository for users.
	Users() Repository[domain.User]

	// Roles returns the repository for roles.
	Roles() Repository[domain.Role]

	// Do runs fn within a single transaction.
	// Nested calls on a transactional unit of work reuse the outer transaction.
	Do(ctx context.Context, fn UnitOfWorkFn) error
}
