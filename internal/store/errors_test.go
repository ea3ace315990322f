package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("lookup: %w", ErrNotFound), true},
		{"ErrServiceNotFound", ErrServiceNotFound, true},
		{"ErrUserNotFound", ErrUserNotFound, true},
		{"wrapped ErrRoleNotFound", fmt.Errorf("failed to find role: %w", ErrRoleNotFound), true},
		{"ErrDuplicate", ErrDuplicate, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"ErrDuplicate", ErrDuplicate, true},
		{"ErrEmailExists", ErrEmailExists, true},
		{"wrapped ErrRoleExists", fmt.Errorf("create: %w", ErrRoleExists), true},
		{"ErrNotFound", ErrNotFound, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsDuplicateError(tc.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("service", "update", "no rows affected", ErrServiceNotFound)

		assert.Equal(t, "update operation on service failed: no rows affected: entity not found: service", err.Error())
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("role", "create", "bad input", nil)

		assert.Equal(t, "create operation on role failed: bad input", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})
}

func TestFilter(t *testing.T) {
	assert.Equal(t, Filter{Field: FieldID, Value: int64(7)}, ByID(7))
	assert.Equal(t, Filter{Field: FieldName, Value: "First"}, ByName("First"))
	assert.Equal(t, Filter{Field: FieldEmail, Value: "a@b.co"}, ByEmail("a@b.co"))
	assert.Equal(t, "id=7", ByID(7).String())
}
