package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"wakala/internal/core/types"
	"wakala/internal/domain/closing"
)

const closingTable = "daily_closings"

// ClosingRepo implements closing.Repository.
type ClosingRepo struct {
	baseRepo[*closing.DailyClosing]
}

var _ closing.Repository = (*ClosingRepo)(nil)

// NewClosingRepo creates a daily-closing repository.
func NewClosingRepo(tm *TxManager) *ClosingRepo {
	return &ClosingRepo{
		baseRepo: newBaseRepo(tm, closingTable, func() *closing.DailyClosing { return &closing.DailyClosing{} }),
	}
}

func (r *ClosingRepo) Create(ctx context.Context, c *closing.DailyClosing) error {
	return r.insert(ctx, c)
}

func (r *ClosingRepo) GetByDay(ctx context.Context, day types.CivilDate) (*closing.DailyClosing, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"closing_day": day.Time()}).
		Limit(1)
	return r.selectOne(ctx, q, day.String())
}

func (r *ClosingRepo) ExistsForDay(ctx context.Context, day types.CivilDate) (bool, error) {
	sql, args, err := r.builder().
		Select("1").
		From(closingTable).
		Where(squirrel.Eq{"closing_day": day.Time()}).
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
		return false, fmt.Errorf("exists closing: %w", err)
	}
	return true, nil
}

func (r *ClosingRepo) List(ctx context.Context, limit int) ([]*closing.DailyClosing, error) {
	q := r.selectBase().OrderBy("closing_day DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.selectMany(ctx, q)
}
