// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package: a generic
// Repository driven by a per-entity table schema, a transactional UnitOfWork,
// and the embedded goose migrations that create the tables.
package postgres
