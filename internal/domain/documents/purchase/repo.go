package purchase

import (
	"context"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
)

// Repository defines persistence for purchase documents.
type Repository interface {
	Create(ctx context.Context, p *Purchase) error
	Delete(ctx context.Context, id id.ID) error

	// List returns all purchases, newest first.
	List(ctx context.Context) ([]*Purchase, error)

	// ListBySupplier returns a supplier's purchases, oldest first.
	ListBySupplier(ctx context.Context, supplierID id.ID) ([]*Purchase, error)

	// ListOnDay returns purchases whose date falls on the given civil day.
	ListOnDay(ctx context.Context, day types.CivilDate) ([]*Purchase, error)
}
