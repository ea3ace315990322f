// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, tests import the
// standardized mocks from this package:
//
//   - Repository[T] is a testify mock of store.Repository for any entity kind
//   - UnitOfWork wires one Repository mock per entity kind and runs Do
//     callbacks synchronously against itself
//   - MockServiceService, MockUserService and MockRoleService use function
//     fields for handler tests that only care about one or two methods
//
// Usage:
//
//	uow := mocks.NewUnitOfWork()
//	uow.ServiceRepo.On("GetAll", mock.Anything).Return(services, nil)
//
//	svc := service.NewServiceService(uow, logger)
//	...
//	uow.ServiceRepo.AssertExpectations(t)
package mocks
