package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"wakala/internal/core/apperror"
	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/documents/expense"
)

const (
	expenseTable         = "expenses"
	expenseCategoryTable = "expense_categories"
)

// ExpenseRepo implements expense.Repository.
type ExpenseRepo struct {
	baseRepo[*expense.Expense]
}

var _ expense.Repository = (*ExpenseRepo)(nil)

// NewExpenseRepo creates an expense repository.
func NewExpenseRepo(tm *TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		baseRepo: newBaseRepo(tm, expenseTable, func() *expense.Expense { return &expense.Expense{} }),
	}
}

func (r *ExpenseRepo) Create(ctx context.Context, e *expense.Expense) error {
	return r.insert(ctx, e)
}

func (r *ExpenseRepo) Delete(ctx context.Context, entityID id.ID) error {
	return r.deleteByID(ctx, entityID)
}

func (r *ExpenseRepo) List(ctx context.Context) ([]*expense.Expense, error) {
	return r.selectMany(ctx, r.selectBase().OrderBy("doc_date DESC"))
}

func (r *ExpenseRepo) ListOnDay(ctx context.Context, day types.CivilDate) ([]*expense.Expense, error) {
	q := r.selectBase().
		Where(onDay("doc_date", day.Time())).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}

func (r *ExpenseRepo) ListCategories(ctx context.Context) ([]string, error) {
	sql, args, err := r.builder().
		Select("name").
		From(expenseCategoryTable).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var names []string
	if err := pgxscan.Select(ctx, r.tm.GetQuerier(ctx), &names, sql, args...); err != nil {
		return nil, fmt.Errorf("query expense categories: %w", err)
	}
	return names, nil
}

func (r *ExpenseRepo) AddCategory(ctx context.Context, name string) error {
	sql, args, err := r.builder().
		Insert(expenseCategoryTable).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) DeleteCategory(ctx context.Context, name string) error {
	sql, args, err := r.builder().
		Delete(expenseCategoryTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.tm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete expense category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(expenseCategoryTable, name)
	}
	return nil
}
