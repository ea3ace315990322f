package postgres

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// Unique constraint names created by the migrations.
const (
	usersEmailKey = "users_email_key"
	rolesNameKey  = "roles_name_key"
)

// Ensure the repositories implement store.Repository
var (
	_ store.Repository[domain.Service] = (*Repository[domain.Service])(nil)
	_ store.Repository[domain.User]    = (*Repository[domain.User])(nil)
	_ store.Repository[domain.Role]    = (*Repository[domain.Role])(nil)
)

var serviceSchema = tableSchema[domain.Service]{
	entityName: "service",
	table:      "services",
	columns:    []string{"name", "description", "price", "created_at", "updated_at"},
	filterColumns: map[string]string{
		store.FieldID:   "id",
		store.FieldName: "name",
	},
	notFound: store.ErrServiceNotFound,
	entity:   func(s *domain.Service) domain.Entity { return s },
	scan: func(row rowScanner) (*domain.Service, error) {
		var s domain.Service
		err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return &s, nil
	},
	values: func(s *domain.Service) []any {
		return []any{s.Name, s.Description, s.Price, s.CreatedAt, s.UpdatedAt}
	},
	touch: touchTimestamps(
		func(s *domain.Service) *time.Time { return &s.CreatedAt },
		func(s *domain.Service) *time.Time { return &s.UpdatedAt },
	),
}

var userSchema = tableSchema[domain.User]{
	entityName: "user",
	table:      "users",
	columns:    []string{"name", "email", "role_id", "created_at", "updated_at"},
	filterColumns: map[string]string{
		store.FieldID:    "id",
		store.FieldName:  "name",
		store.FieldEmail: "email",
	},
	uniqueErrors: map[string]error{
		usersEmailKey: store.ErrEmailExists,
	},
	notFound: store.ErrUserNotFound,
	entity:   func(u *domain.User) domain.Entity { return u },
	scan: func(row rowScanner) (*domain.User, error) {
		var u domain.User
		var email sql.NullString
		var roleID sql.NullInt64
		err := row.Scan(&u.ID, &u.Name, &email, &roleID, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		u.Email = email.String
		if roleID.Valid {
			id := roleID.Int64
			u.RoleID = &id
		}
		return &u, nil
	},
	values: func(u *domain.User) []any {
		// Empty emails are stored as NULL so the unique constraint ignores them
		email := sql.NullString{String: u.Email, Valid: u.Email != ""}
		var roleID sql.NullInt64
		if u.RoleID != nil {
			roleID = sql.NullInt64{Int64: *u.RoleID, Valid: true}
		}
		return []any{u.Name, email, roleID, u.CreatedAt, u.UpdatedAt}
	},
	touch: touchTimestamps(
		func(u *domain.User) *time.Time { return &u.CreatedAt },
		func(u *domain.User) *time.Time { return &u.UpdatedAt },
	),
}

var roleSchema = tableSchema[domain.Role]{
	entityName: "role",
	table:      "roles",
	columns:    []string{"name"},
	filterColumns: map[string]string{
		store.FieldID:   "id",
		store.FieldName: "name",
	},
	uniqueErrors: map[string]error{
		rolesNameKey: store.ErrRoleExists,
	},
	notFound: store.ErrRoleNotFound,
	entity:   func(r *domain.Role) domain.Entity { return r },
	scan: func(row rowScanner) (*domain.Role, error) {
		var r domain.Role
		if err := row.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		return &r, nil
	},
	values: func(r *domain.Role) []any {
		return []any{r.Name}
	},
}

// touchTimestamps stamps UpdatedAt on every write and CreatedAt on creation
// when the caller left it unset.
func touchTimestamps[T any](created, updated func(*T) *time.Time) func(*T, bool) {
	return func(e *T, creating bool) {
		now := time.Now().UTC()
		if creating && created(e).IsZero() {
			*created(e) = now
		}
		*updated(e) = now
	}
}

// NewServiceRepository creates a repository for agency services.
func NewServiceRepository(db store.DBTX, logger *slog.Logger) *Repository[domain.Service] {
	return newRepository(db, serviceSchema, logger)
}

// NewUserRepository creates a repository for users.
func NewUserRepository(db store.DBTX, logger *slog.Logger) *Repository[domain.User] {
	return newRepository(db, userSchema, logger)
}

// NewRoleRepository creates a repository for roles.
func NewRoleRepository(db store.DBTX, logger *slog.Logger) *Repository[domain.Role] {
	return newRepository(db, roleSchema, logger)
}
