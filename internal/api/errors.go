package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/agency-api/internal/api/shared"
	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/store"
)

// ErrInvalidID is returned when a path identifier is missing or is not a
// positive integer.
var ErrInvalidID = errors.New("invalid id")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Not found errors, including every entity-specific variant
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrRoleNotFound):
		return "Role not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrRoleExists):
		return "Role name already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	// Bad request errors, most specific first
	case errors.Is(err, ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, domain.ErrEmptyName):
		return "Name is required"
	case errors.Is(err, domain.ErrNameTooLong):
		return "Name is too long"
	case errors.Is(err, domain.ErrNegativePrice):
		return "Price must not be negative"
	case errors.Is(err, domain.ErrPriceTooLarge):
		return "Price is too large"
	case errors.Is(err, domain.ErrPricePrecision):
		return "Price must have at most 2 decimal places"
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email format"
	case errors.Is(err, domain.ErrInvalidRoleID):
		return "Invalid role ID"
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gt", "gte":
		return "too small"
	case "max", "lt", "lte":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. The status and message
// come from MapErrorToStatusCode and GetSafeErrorMessage; for internal server
// errors a non-empty fallbackMessage replaces the generic message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
