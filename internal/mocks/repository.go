package mocks

import (
	"context"

	"github.com/phrazzld/agency-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock of store.Repository for use with testify/mock
type Repository[T any] struct {
	mock.Mock
}

// GetAll is a mock implementation of store.Repository.GetAll
func (m *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	if entities, ok := args.Get(0).([]*T); ok {
		return entities, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetOne is a mock implementation of store.Repository.GetOne
func (m *Repository[T]) GetOne(ctx context.Context, filter store.Filter) (*T, error) {
	args := m.Called(ctx, filter)
	if entity, ok := args.Get(0).(*T); ok {
		return entity, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.Repository.Create
func (m *Repository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// Update is a mock implementation of store.Repository.Update
func (m *Repository[T]) Update(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// Remove is a mock implementation of store.Repository.Remove
func (m *Repository[T]) Remove(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}
