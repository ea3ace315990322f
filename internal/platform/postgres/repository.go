package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/agency-api/internal/domain"
	"github.com/phrazzld/agency-api/internal/platform/logger"
	"github.com/phrazzld/agency-api/internal/store"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSchema describes how one entity kind maps onto its table.
// The id column is implicit and always selected first.
type tableSchema[T any] struct {
	// entityName is used in logs and StoreError values
	entityName string
	table      string
	// columns lists the writable columns in the order values returns them
	columns []string
	// filterColumns whitelists the store.Filter fields this kind supports
	filterColumns map[string]string
	// uniqueErrors maps unique constraint names to specific store errors
	uniqueErrors map[string]error
	notFound     error

	entity func(*T) domain.Entity
	scan   func(row rowScanner) (*T, error)
	values func(*T) []any
	// touch updates timestamps before a write; creating is false for updates
	touch func(e *T, creating bool)
}

func (s tableSchema[T]) componentName() string {
	return s.entityName + "_repository"
}

// Repository is a PostgreSQL implementation of store.Repository for any
// entity kind described by a tableSchema.
type Repository[T any] struct {
	db     store.DBTX
	schema tableSchema[T]
	logger *slog.Logger
}

func newRepository[T any](db store.DBTX, schema tableSchema[T], logger *slog.Logger) *Repository[T] {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Repository[T]{
		db:     db,
		schema: schema,
		logger: logger.With(slog.String("component", schema.componentName())),
	}
}

// WithTx returns a repository of the same kind bound to tx.
func (r *Repository[T]) WithTx(tx *sql.Tx) *Repository[T] {
	return &Repository[T]{
		db:     tx,
		schema: r.schema,
		logger: r.logger,
	}
}

// requestLogger returns the request-scoped logger from ctx, keeping this
// repository's component attribute.
func (r *Repository[T]) requestLogger(ctx context.Context) *slog.Logger {
	return logger.ForComponent(ctx, r.logger, r.schema.componentName())
}

func (r *Repository[T]) selectColumns() string {
	return "id, " + strings.Join(r.schema.columns, ", ")
}

// GetAll implements store.Repository.GetAll.
func (r *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	log := r.requestLogger(ctx)

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", r.selectColumns(), r.schema.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query entities", slog.String("error", err.Error()))
		return nil, store.NewStoreError(r.schema.entityName, "get all", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	entities := make([]*T, 0)
	for rows.Next() {
		e, err := r.schema.scan(rows)
		if err != nil {
			log.Error("failed to scan entity", slog.String("error", err.Error()))
			return nil, store.NewStoreError(r.schema.entityName, "get all", "scan failed", err)
		}
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating entity rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError(r.schema.entityName, "get all", "row iteration failed", err)
	}

	log.Debug("retrieved entities", slog.Int("count", len(entities)))
	return entities, nil
}

// GetOne implements store.Repository.GetOne.
func (r *Repository[T]) GetOne(ctx context.Context, filter store.Filter) (*T, error) {
	log := r.requestLogger(ctx)

	column, ok := r.schema.filterColumns[filter.Field]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", store.ErrInvalidFilter, r.schema.entityName, filter.Field)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1 ORDER BY id LIMIT 1",
		r.selectColumns(),
		r.schema.table,
		column,
	)

	e, err := r.schema.scan(r.db.QueryRowContext(ctx, query, filter.Value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("entity not found", slog.String("filter", filter.String()))
			return nil, r.schema.notFound
		}
		log.Error("failed to get entity",
			slog.String("error", err.Error()),
			slog.String("filter", filter.String()))
		return nil, store.NewStoreError(r.schema.entityName, "get one", "query failed", MapError(err))
	}

	return e, nil
}

// Create implements store.Repository.Create.
func (r *Repository[T]) Create(ctx context.Context, e *T) error {
	log := r.requestLogger(ctx)

	if r.schema.touch != nil {
		r.schema.touch(e, true)
	}

	if err := r.schema.entity(e).Validate(); err != nil {
		log.Warn("entity validation failed during create", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	placeholders := make([]string, len(r.schema.columns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.schema.table,
		strings.Join(r.schema.columns, ", "),
		strings.Join(placeholders, ", "),
	)

	var id int64
	if err := r.db.QueryRowContext(ctx, query, r.schema.values(e)...).Scan(&id); err != nil {
		log.Error("failed to create entity", slog.String("error", err.Error()))
		return store.NewStoreError(r.schema.entityName, "create", "insert failed",
			mapWriteError(err, r.schema.uniqueErrors))
	}

	r.schema.entity(e).SetID(id)

	log.Info("entity created", slog.Int64("id", id))
	return nil
}

// Update implements store.Repository.Update.
func (r *Repository[T]) Update(ctx context.Context, e *T) error {
	log := r.requestLogger(ctx)

	if r.schema.touch != nil {
		r.schema.touch(e, false)
	}

	entity := r.schema.entity(e)
	if err := entity.Validate(); err != nil {
		log.Warn("entity validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("id", entity.GetID()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	assignments := make([]string, len(r.schema.columns))
	for i, column := range r.schema.columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		r.schema.table,
		strings.Join(assignments, ", "),
		len(r.schema.columns)+1,
	)

	args := append(r.schema.values(e), entity.GetID())
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update entity",
			slog.String("error", err.Error()),
			slog.Int64("id", entity.GetID()))
		return store.NewStoreError(r.schema.entityName, "update", "update failed",
			mapWriteError(err, r.schema.uniqueErrors))
	}

	if err := CheckRowsAffected(result, r.schema.notFound); err != nil {
		log.Debug("entity to update not found", slog.Int64("id", entity.GetID()))
		return err
	}

	log.Info("entity updated", slog.Int64("id", entity.GetID()))
	return nil
}

// Remove implements store.Repository.Remove.
func (r *Repository[T]) Remove(ctx context.Context, e *T) error {
	log := r.requestLogger(ctx)

	id := r.schema.entity(e).GetID()
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", r.schema.table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to remove entity",
			slog.String("error", err.Error()),
			slog.Int64("id", id))
		return store.NewStoreError(r.schema.entityName, "remove", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, r.schema.notFound); err != nil {
		log.Debug("entity to remove not found", slog.Int64("id", id))
		return err
	}

	log.Info("entity removed", slog.Int64("id", id))
	return nil
}
