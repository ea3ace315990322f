package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// maxPrice is the smallest price that no longer fits the stored precision.
var maxPrice = decimal.New(1, maxPriceDigits)

// Service is an offering the agency sells to its clients.
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewService creates a Service that has not been persisted yet.
// The ID stays zero until the store assigns one.
func NewService(name, description string, price decimal.Decimal) (*Service, error) {
	now := time.Now().UTC()
	s := &Service{
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// GetID implements Entity.
func (s *Service) GetID() int64 { return s.ID }

// SetID implements Entity.
func (s *Service) SetID(id int64) { s.ID = id }

// Validate checks if the Service has valid data.
func (s *Service) Validate() error {
	if err := validateName(s.Name); err != nil {
		return err
	}

	if s.Price.IsNegative() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrNegativePrice)
	}

	if s.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrPriceTooLarge)
	}

	if !s.Price.Equal(s.Price.Round(MaxPriceScale)) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrPricePrecision)
	}

	return nil
}
