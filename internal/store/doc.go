// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic: a generic Repository per entity kind and a
// UnitOfWork that hands out repositories sharing one transactional scope.
package store
