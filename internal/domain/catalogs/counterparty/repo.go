package counterparty

import (
	"context"

	"wakala/internal/core/id"
)

// Repository defines persistence for the counterparty catalog.
type Repository interface {
	Create(ctx context.Context, cp *Counterparty) error
	Update(ctx context.Context, cp *Counterparty) error

	// Delete removes the counterparty; cascading removal of its documents
	// is the schema's concern (ON DELETE CASCADE), not the engine's.
	Delete(ctx context.Context, id id.ID) error

	GetByID(ctx context.Context, id id.ID) (*Counterparty, error)
	ListByKind(ctx context.Context, kind Kind) ([]*Counterparty, error)
	FindByName(ctx context.Context, kind Kind, name string) (*Counterparty, error)
}
