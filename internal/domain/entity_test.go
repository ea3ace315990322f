package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("valid service", func(t *testing.T) {
		s, err := NewService("Consulting", "Hourly consulting", decimal.RequireFromString("120.50"))

		require.NoError(t, err)
		assert.Zero(t, s.ID, "ID is assigned by the store")
		assert.Equal(t, "Consulting", s.Name)
		assert.True(t, s.Price.Equal(decimal.RequireFromString("120.5")))
		assert.False(t, s.CreatedAt.IsZero())
		assert.Equal(t, s.CreatedAt, s.UpdatedAt)
	})

	t.Run("largest storable price is allowed", func(t *testing.T) {
		_, err := NewService("Retainer", "", decimal.RequireFromString("9999999999.99"))
		assert.NoError(t, err)
	})

	t.Run("trailing zeros beyond two places are allowed", func(t *testing.T) {
		_, err := NewService("Retainer", "", decimal.RequireFromString("12.500"))
		assert.NoError(t, err)
	})

	t.Run("free service is allowed", func(t *testing.T) {
		_, err := NewService("Intro call", "", decimal.Zero)
		assert.NoError(t, err)
	})

	tests := []struct {
		name    string
		svcName string
		price   decimal.Decimal
		wantErr error
	}{
		{"empty name", "", decimal.Zero, ErrEmptyName},
		{"whitespace name", "   ", decimal.Zero, ErrEmptyName},
		{"name too long", strings.Repeat("a", MaxNameLength+1), decimal.Zero, ErrNameTooLong},
		{"negative price", "Audit", decimal.NewFromInt(-1), ErrNegativePrice},
		{"price at integer digit limit", "Audit", decimal.RequireFromString("10000000000"), ErrPriceTooLarge},
		{"price far beyond limit", "Audit", decimal.RequireFromString("12345678901.5"), ErrPriceTooLarge},
		{"price with three decimals", "Audit", decimal.RequireFromString("1.999"), ErrPricePrecision},
		{"sub-cent price", "Audit", decimal.RequireFromString("0.001"), ErrPricePrecision},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewService(tc.svcName, "", tc.price)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewUser(t *testing.T) {
	roleID := int64(3)
	badRoleID := int64(0)

	tests := []struct {
		name    string
		user    string
		email   string
		roleID  *int64
		wantErr error
	}{
		{"name only", "Alice", "", nil, nil},
		{"with email and role", "Bob", "bob@example.com", &roleID, nil},
		{"empty name", "", "", nil, ErrEmptyName},
		{"invalid email", "Carol", "not-an-email", nil, ErrInvalidEmail},
		{"invalid role", "Dave", "", &badRoleID, ErrInvalidRoleID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewUser(tc.user, tc.email, tc.roleID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				return
			}

			require.NoError(t, err)
			assert.Zero(t, u.ID)
			assert.Equal(t, tc.user, u.Name)
			assert.Equal(t, tc.email, u.Email)
			assert.Equal(t, tc.roleID, u.RoleID)
		})
	}
}

func TestNewRole(t *testing.T) {
	r, err := NewRole("Manager")
	require.NoError(t, err)
	assert.Equal(t, "Manager", r.Name)

	_, err = NewRole("")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestEntityIdentifiers(t *testing.T) {
	entities := []Entity{&Service{}, &User{}, &Role{}}

	for _, e := range entities {
		assert.Zero(t, e.GetID())
		e.SetID(42)
		assert.Equal(t, int64(42), e.GetID())
	}
}
