package service

import (
	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ServiceDTO is the caller-facing representation of an agency service.
// ID is ignored on input and set by the store on output.
type ServiceDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UserDTO is the caller-facing representation of a user.
type UserDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	RoleID *int64 `json:"role_id,omitempty"`
}

// RoleDTO is the caller-facing representation of a role.
type RoleDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func serviceToDTO(s *domain.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
	}
}

// applyServiceDTO copies the mutable attributes of dto onto s.
// The identifier is never touched.
func applyServiceDTO(s *domain.Service, dto ServiceDTO) {
	s.Name = dto.Name
	s.Description = dto.Description
	s.Price = dto.Price
}

func userToDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RoleID: copyID(u.RoleID),
	}
}

func applyUserDTO(u *domain.User, dto UserDTO) {
	u.Name = dto.Name
	u.Email = dto.Email
	u.RoleID = copyID(dto.RoleID)
}

func roleToDTO(r *domain.Role) RoleDTO {
	return RoleDTO{ID: r.ID, Name: r.Name}
}

func applyRoleDTO(r *domain.Role, dto RoleDTO) {
	r.Name = dto.Name
}

// copyID detaches optional identifiers so DTOs and entities never share a pointer.
func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
