package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Entity is implemented by every persisted domain type. The identifier is
// assigned by the store and is zero until the entity has been created.
type Entity interface {
	// GetID returns the store-assigned identifier.
	GetID() int64

	// SetID records the identifier assigned by the store on creation.
	SetID(id int64)

	// Validate checks the entity's invariants before it is written.
	Validate() error
}

// validateName enforces the naming rules shared by all entities.
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyName)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNameTooLong)
	}
	return nil
}
