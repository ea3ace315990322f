package domain

import "errors"

// Common validation errors used across the domain entities.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Entity-specific errors wrap it so callers can match either.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when an entity is given an empty name.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong is returned when a name exceeds MaxNameLength characters.
	ErrNameTooLong = errors.New("name is too long")

	// ErrNegativePrice is returned when a service is given a price below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrPriceTooLarge is returned when a price has more integer digits than
	// a stored price can hold.
	ErrPriceTooLarge = errors.New("price is too large")

	// ErrPricePrecision is returned when a price has more than MaxPriceScale
	// decimal places.
	ErrPricePrecision = errors.New("price has too many decimal places")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRoleID is returned when a role reference is not a positive identifier.
	ErrInvalidRoleID = errors.New("invalid role ID")
)

// MaxNameLength is the longest name accepted for any entity.
const MaxNameLength = 255

// Service prices are stored as NUMERIC(12,2).
const (
	// MaxPriceScale is the number of decimal places a price may carry.
	MaxPriceScale = 2

	// maxPriceDigits is the number of integer digits a price may carry.
	maxPriceDigits = 10
)
