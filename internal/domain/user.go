package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// emailValidator is shared by every User; validator instances cache struct
// metadata and are safe for concurrent use.
var emailValidator = validator.New()

// User represents a person managed by the agency.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	RoleID    *int64    `json:"role_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a User that has not been persisted yet.
// Email and roleID are optional.
func NewUser(name, email string, roleID *int64) (*User, error) {
	now := time.Now().UTC()
	u := &User{
		Name:      name,
		Email:     email,
		RoleID:    roleID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// GetID implements Entity.
func (u *User) GetID() int64 { return u.ID }

// SetID implements Entity.
func (u *User) SetID(id int64) { u.ID = id }

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if err := validateName(u.Name); err != nil {
		return err
	}

	if u.Email != "" {
		if err := emailValidator.Var(u.Email, "email"); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidEmail)
		}
	}

	if u.RoleID != nil && *u.RoleID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidRoleID)
	}

	return nil
}
