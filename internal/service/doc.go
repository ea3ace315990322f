// Package service contains the application use cases for the agency: managing
// its services, its users, and the roles users hold.
//
// Each service translates between transfer objects (DTOs), which are what
// callers such as the HTTP layer see, and domain entities, which are what the
// store persists. All persistence goes through a store.UnitOfWork:
//
//   - reads (list, get by id) use the unit of work's repositories directly
//   - add performs exactly one Create and returns the stored DTO
//   - update and remove run inside UnitOfWork.Do so that the lookup and the
//     write share one transaction
//
// Errors from the store are wrapped with %w, so callers can still test them
// with errors.Is (for example store.ErrNotFound).
//
// The service layer depends on domain entities and the store interfaces, never
// on a specific database implementation.
package service
