package sale

import (
	"context"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
)

// Repository defines persistence for sale documents.
type Repository interface {
	Create(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id id.ID) error

	// List returns all sales, newest first.
	List(ctx context.Context) ([]*Sale, error)

	// ListByCustomer returns a customer's sales, oldest first.
	ListByCustomer(ctx context.Context, customerID id.ID) ([]*Sale, error)

	// ListOnDay returns the sales whose date falls on the given civil day.
	ListOnDay(ctx context.Context, day types.CivilDate) ([]*Sale, error)
}
