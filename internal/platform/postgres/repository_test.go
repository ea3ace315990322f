package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/platform/logger"
	"github.com/phrazzld/agency-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	serviceColumns = []string{"id", "name", "description", "price", "created_at", "updated_at"}
	userColumns    = []string{"id", "name", "email", "role_id", "created_at", "updated_at"}
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func TestRepository_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	log, _ := logger.NewTestLogger(t)
	repo := NewServiceRepository(db, log)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, description, price, created_at, updated_at FROM services ORDER BY id",
	)).WillReturnRows(sqlmock.NewRows(serviceColumns).
		AddRow(int64(1), "First", "", "10.00", now, now).
		AddRow(int64(2), "Second", "second service", "20.50", now, now).
		AddRow(int64(3), "Third", "", "0", now, now))

	services, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{services[0].Name, services[1].Name, services[2].Name})
	assert.Equal(t, int64(2), services[1].ID)
	assert.True(t, services[1].Price.Equal(decimal.RequireFromString("20.5")))
}

func TestRepository_GetAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db, nil)

	mock.ExpectQuery("SELECT .* FROM services").
		WillReturnRows(sqlmock.NewRows(serviceColumns))

	services, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}

func TestRepository_GetAll_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepository(db, nil)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery("SELECT .* FROM services").WillReturnError(dbErr)

	services, err := repo.GetAll(context.Background())

	require.Error(t, err)
	assert.Nil(t, services)
	assert.ErrorIs(t, err, dbErr)
	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "service", storeErr.Entity)
}

func TestRepository_GetOne(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, nil)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name, email, role_id, created_at, updated_at FROM users WHERE id = $1 ORDER BY id LIMIT 1",
		)).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "First", "first@example.com", int64(2), now, now))

		user, err := repo.GetOne(context.Background(), store.ByID(1))

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "First", user.Name)
		assert.Equal(t, "first@example.com", user.Email)
		require.NotNil(t, user.RoleID)
		assert.Equal(t, int64(2), *user.RoleID)
	})

	t.Run("by name", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRoleRepository(db, nil)

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, name FROM roles WHERE name = $1 ORDER BY id LIMIT 1",
		)).WithArgs("Admin").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(4), "Admin"))

		role, err := repo.GetOne(context.Background(), store.ByName("Admin"))

		require.NoError(t, err)
		assert.Equal(t, int64(4), role.ID)
	})

	t.Run("null optional columns", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, nil)
		now := time.Now().UTC()

		mock.ExpectQuery("FROM users WHERE email = \\$1").
			WithArgs("none@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(5), "Nobody", nil, nil, now, now))

		user, err := repo.GetOne(context.Background(), store.ByEmail("none@example.com"))

		require.NoError(t, err)
		assert.Empty(t, user.Email)
		assert.Nil(t, user.RoleID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewServiceRepository(db, nil)

		mock.ExpectQuery("FROM services WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(serviceColumns))

		service, err := repo.GetOne(context.Background(), store.ByID(99))

		assert.Nil(t, service)
		assert.ErrorIs(t, err, store.ErrServiceNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown field", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewRoleRepository(db, nil)

		role, err := repo.GetOne(context.Background(), store.ByEmail("x@example.com"))

		assert.Nil(t, role)
		assert.ErrorIs(t, err, store.ErrInvalidFilter)
	})
}

func TestRepository_Create(t *testing.T) {
	t.Run("assigns store id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewServiceRepository(db, nil)
		price := decimal.RequireFromString("99.90")

		mock.ExpectQuery(regexp.QuoteMeta(
			"INSERT INTO services (name, description, price, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		)).WithArgs("Audit", "Yearly audit", price, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

		service := &domain.Service{ID: 500, Name: "Audit", Description: "Yearly audit", Price: price}
		err := repo.Create(context.Background(), service)

		require.NoError(t, err)
		assert.Equal(t, int64(12), service.ID, "caller-supplied IDs are replaced by the store")
		assert.False(t, service.CreatedAt.IsZero())
		assert.False(t, service.UpdatedAt.IsZero())
	})

	t.Run("invalid entity is rejected before querying", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewRoleRepository(db, nil)

		err := repo.Create(context.Background(), &domain.Role{Name: ""})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("price beyond column precision is rejected before querying", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewServiceRepository(db, nil)

		err := repo.Create(context.Background(), &domain.Service{
			Name:  "Big",
			Price: decimal.RequireFromString("12345678901.5"),
		})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrPriceTooLarge)
	})

	t.Run("numeric overflow from the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewServiceRepository(db, nil)

		mock.ExpectQuery("INSERT INTO services").
			WillReturnError(&pgconn.PgError{Code: numericValueOutOfRangeCode})

		err := repo.Create(context.Background(), &domain.Service{Name: "Audit", Price: decimal.NewFromInt(5)})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, nil)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Alice", "alice@example.com", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: usersEmailKey})

		err := repo.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@example.com"})

		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("unknown role", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, nil)
		roleID := int64(77)

		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "users_role_id_fkey"})

		err := repo.Create(context.Background(), &domain.User{Name: "Bob", RoleID: &roleID})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRoleRepository(db, nil)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE roles SET name = $1 WHERE id = $2")).
			WithArgs("Admin", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), &domain.Role{ID: 4, Name: "Admin"})

		assert.NoError(t, err)
	})

	t.Run("no rows affected", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRoleRepository(db, nil)

		mock.ExpectExec("UPDATE roles").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), &domain.Role{ID: 4, Name: "Admin"})

		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})

	t.Run("duplicate role name", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRoleRepository(db, nil)

		mock.ExpectExec("UPDATE roles").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: rolesNameKey})

		err := repo.Update(context.Background(), &domain.Role{ID: 4, Name: "Admin"})

		assert.ErrorIs(t, err, store.ErrRoleExists)
	})

	t.Run("refreshes updated_at", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewServiceRepository(db, nil)
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectExec("UPDATE services SET").
			WithArgs("Audit", "", decimal.Zero, created, sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		service := &domain.Service{ID: 3, Name: "Audit", CreatedAt: created, UpdatedAt: created}
		err := repo.Update(context.Background(), service)

		require.NoError(t, err)
		assert.Equal(t, created, service.CreatedAt)
		assert.True(t, service.UpdatedAt.After(created))
	})
}

func TestRepository_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewServiceRepository(db, nil)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Remove(context.Background(), &domain.Service{ID: 1, Name: "First"})

		assert.NoError(t, err)
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserRepository(db, nil)

		mock.ExpectExec("DELETE FROM users").
			WithArgs(int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(context.Background(), &domain.User{ID: 8})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestNewRepository_NilDBPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewServiceRepository(nil, nil)
	})
}

func TestRepository_LogsKeepComponentWithRequestLogger(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleRepository(db, nil)
	requestLog, buf := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), requestLog.With("trace_id", "trace-42"))

	mock.ExpectQuery("SELECT .* FROM roles").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAll(ctx)
	require.Error(t, err)

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "trace-42", entries[0]["trace_id"])
	assert.Equal(t, "role_repository", entries[0]["component"])
}
