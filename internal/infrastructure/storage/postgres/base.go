package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"wakala/internal/core/apperror"
	"wakala/internal/core/id"
)

// baseRepo carries the shared plumbing of every repository: a statement
// builder bound to $N placeholders, tag-driven inserts and scany reads.
type baseRepo[T any] struct {
	tm    *TxManager
	table string
	cols  []string
	newFn func() T
}

func newBaseRepo[T any](tm *TxManager, table string, newFn func() T) baseRepo[T] {
	return baseRepo[T]{
		tm:    tm,
		table: table,
		cols:  ExtractDBColumns[T](),
		newFn: newFn,
	}
}

func (r *baseRepo[T]) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *baseRepo[T]) selectBase() squirrel.SelectBuilder {
	return r.builder().Select(r.cols...).From(r.table)
}

// insert writes an entity using its db tags, stamping created/updated.
func (r *baseRepo[T]) insert(ctx context.Context, entity T) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found on %s entity", r.table)
	}

	now := time.Now().UTC()
	if v, ok := data["created_at"].(time.Time); ok && v.IsZero() {
		data["created_at"] = now
	}
	data["updated_at"] = now

	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().Insert(r.table).SetMap(filtered).ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// update rewrites an entity with optimistic locking on version.
func (r *baseRepo[T]) update(ctx context.Context, entity T) error {
	data := StructToMap(entity)

	entityID, ok := data["id"]
	if !ok {
		return fmt.Errorf("%s entity has no id column", r.table)
	}
	version, ok := data["version"].(int)
	if !ok {
		return fmt.Errorf("%s entity has no version column", r.table)
	}

	filtered := make(map[string]any, len(r.cols))
	for _, col := range r.cols {
		if col == "id" || col == "version" || col == "created_at" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}
	filtered["updated_at"] = time.Now().UTC()

	sql, args, err := r.builder().
		Update(r.table).
		SetMap(filtered).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(r.table, entityID)
	}
	return nil
}

func (r *baseRepo[T]) deleteByID(ctx context.Context, entityID id.ID) error {
	sql, args, err := r.builder().
		Delete(r.table).
		Where(squirrel.Eq{"id": entityID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", r.table, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.table, entityID.String())
	}
	return nil
}

func (r *baseRepo[T]) selectOne(ctx context.Context, q squirrel.SelectBuilder, key any) (T, error) {
	entity := r.newFn()

	sql, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.tm.GetQuerier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.table, key)
		}
		return entity, fmt.Errorf("query %s: %w", r.table, err)
	}
	return entity, nil
}

func (r *baseRepo[T]) selectMany(ctx context.Context, q squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []T
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	return items, nil
}

// onDay constrains a timestamp column to one civil day (UTC bounds).
func onDay(col string, start time.Time) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{col: start},
		squirrel.Lt{col: start.Add(24 * time.Hour)},
	}
}
