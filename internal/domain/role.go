package domain

// Role is a named permission group a user can belong to.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewRole creates a Role that has not been persisted yet.
func NewRole(name string) (*Role, error) {
	r := &Role{Name: name}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// GetID implements Entity.
func (r *Role) GetID() int64 { return r.ID }

// SetID implements Entity.
func (r *Role) SetID(id int64) { r.ID = id }

// Validate checks if the Role has valid data.
func (r *Role) Validate() error {
	return validateName(r.Name)
}
