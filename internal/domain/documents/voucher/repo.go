package voucher

import (
	"context"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
)

// Repository defines persistence for vouchers.
type Repository interface {
	Create(ctx context.Context, v *Voucher) error
	Delete(ctx context.Context, id id.ID) error

	// List returns all vouchers, newest first.
	List(ctx context.Context) ([]*Voucher, error)

	// ListByEntity returns a counterparty's vouchers, oldest first.
	ListByEntity(ctx context.Context, entityID id.ID, kind counterparty.Kind) ([]*Voucher, error)

	// ListOnDay returns vouchers whose date falls on the given civil day.
	ListOnDay(ctx context.Context, day types.CivilDate) ([]*Voucher, error)
}
