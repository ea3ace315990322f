package store

import (
	"context"
	"fmt"
)

// Filter fields understood by every Repository implementation. Repositories
// reject fields their entity kind does not have with ErrInvalidFilter.
const (
	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
)

// Filter is an equality predicate selecting entities whose Field equals Value.
type Filter struct {
	Field string
	Value any
}

// ByID matches the entity with the given store-assigned identifier.
func ByID(id int64) Filter {
	return Filter{Field: FieldID, Value: id}
}

// ByName matches entities with exactly the given name.
func ByName(name string) Filter {
	return Filter{Field: FieldName, Value: name}
}

// ByEmail matches entities with exactly the given email address.
func ByEmail(email string) Filter {
	return Filter{Field: FieldEmail, Value: email}
}

// String renders the filter for logs and error messages.
func (f Filter) String() string {
	return fmt.Sprintf("%s=%v", f.Field, f.Value)
}

// Repository defines generic persistence operations for one entity kind.
// T is the domain entity type, e.g. domain.Service.
type Repository[T any] interface {
	// GetAll returns every entity ordered by identifier.
	GetAll(ctx context.Context) ([]*T, error)

	// GetOne returns the first entity matching the filter.
	// Returns an error wrapping ErrNotFound if nothing matches and
	// ErrInvalidFilter if the field is unknown for this entity kind.
	GetOne(ctx context.Context, filter Filter) (*T, error)

	// Create inserts the entity and records the store-assigned identifier on it.
	// Any identifier already set on the entity is ignored.
	// Returns an error wrapping ErrInvalidEntity if validation fails.
	Create(ctx context.Context, entity *T) error

	// Update overwrites the stored entity that has the same identifier.
	// Returns an error wrapping ErrNotFound if no such entity exists.
	Update(ctx context.Context, entity *T) error

	// Remove deletes the stored entity that has the same identifier.
	// Returns an error wrapping ErrNotFound if no such entity exists.
	Remove(ctx context.Context, entity *T) error
}
