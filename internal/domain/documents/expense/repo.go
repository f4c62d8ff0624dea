package expense

import (
	"context"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
)

// Repository defines persistence for expenses.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id id.ID) error

	// List returns all expenses, newest first.
	List(ctx context.Context) ([]*Expense, error)

	// ListOnDay returns expenses whose date falls on the given civil day.
	ListOnDay(ctx context.Context, day types.CivilDate) ([]*Expense, error)

	// ListCategories returns the known expense category names.
	ListCategories(ctx context.Context) ([]string, error)

	// AddCategory registers a new category name.
	AddCategory(ctx context.Context, name string) error

	// DeleteCategory removes a category name.
	DeleteCategory(ctx context.Context, name string) error
}
