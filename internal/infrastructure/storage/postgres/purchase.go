package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/documents/purchase"
)

const purchaseTable = "purchases"

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	baseRepo[*purchase.Purchase]
}

var _ purchase.Repository = (*PurchaseRepo)(nil)

// NewPurchaseRepo creates a purchase repository.
func NewPurchaseRepo(tm *TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		baseRepo: newBaseRepo(tm, purchaseTable, func() *purchase.Purchase { return &purchase.Purchase{} }),
	}
}

func (r *PurchaseRepo) Create(ctx context.Context, p *purchase.Purchase) error {
	return r.insert(ctx, p)
}

func (r *PurchaseRepo) Delete(ctx context.Context, entityID id.ID) error {
	return r.deleteByID(ctx, entityID)
}

func (r *PurchaseRepo) List(ctx context.Context) ([]*purchase.Purchase, error) {
	return r.selectMany(ctx, r.selectBase().OrderBy("doc_date DESC"))
}

func (r *PurchaseRepo) ListBySupplier(ctx context.Context, supplierID id.ID) ([]*purchase.Purchase, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"supplier_id": supplierID}).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}

func (r *PurchaseRepo) ListOnDay(ctx context.Context, day types.CivilDate) ([]*purchase.Purchase, error) {
	q := r.selectBase().
		Where(onDay("doc_date", day.Time())).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}
