package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"wakala/internal/core/apperror"
	"wakala/internal/domain/catalogs/item"
)

const itemTable = "item_types"

// ItemRepo implements item.Repository.
type ItemRepo struct {
	baseRepo[*item.Item]
}

var _ item.Repository = (*ItemRepo)(nil)

// NewItemRepo creates an item-type repository.
func NewItemRepo(tm *TxManager) *ItemRepo {
	return &ItemRepo{
		baseRepo: newBaseRepo(tm, itemTable, func() *item.Item { return &item.Item{} }),
	}
}

func (r *ItemRepo) Create(ctx context.Context, it *item.Item) error {
	return r.insert(ctx, it)
}

func (r *ItemRepo) DeleteByName(ctx context.Context, name string) error {
	sql, args, err := r.builder().
		Delete(itemTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete item type: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(itemTable, name)
	}
	return nil
}

func (r *ItemRepo) List(ctx context.Context) ([]*item.Item, error) {
	return r.selectMany(ctx, r.selectBase().OrderBy("name ASC"))
}

func (r *ItemRepo) Exists(ctx context.Context, name string) (bool, error) {
	sql, args, err := r.builder().
		Select("1").
		From(itemTable).
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.tm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists item type: %w", err)
	}
	return true, nil
}
