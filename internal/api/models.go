package api

import (
	"github.com/phrazzld/agency-api/internal/service"
	"github.com/shopspring/decimal"
)

// ServiceRequest defines the payload for creating or updating an agency service.
// Price accepts both JSON numbers and strings, e.g. 120.5 or "120.50".
type ServiceRequest struct {
	Name        string          `json:"name"        validate:"required,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
}

func (r ServiceRequest) toDTO() service.ServiceDTO {
	return service.ServiceDTO{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
	}
}

// UserRequest defines the payload for creating or updating a user.
type UserRequest struct {
	Name   string `json:"name"    validate:"required,max=255"`
	Email  string `json:"email"   validate:"omitempty,email,max=255"`
	RoleID *int64 `json:"role_id" validate:"omitempty,gt=0"`
}

func (r UserRequest) toDTO() service.UserDTO {
	return service.UserDTO{
		Name:   r.Name,
		Email:  r.Email,
		RoleID: r.RoleID,
	}
}

// RoleRequest defines the payload for creating or updating a role.
type RoleRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (r RoleRequest) toDTO() service.RoleDTO {
	return service.RoleDTO{Name: r.Name}
}
