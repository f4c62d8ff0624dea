package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/documents/sale"
)

const saleTable = "sales"

// SaleRepo implements sale.Repository.
type SaleRepo struct {
	baseRepo[*sale.Sale]
}

var _ sale.Repository = (*SaleRepo)(nil)

// NewSaleRepo creates a sale repository.
func NewSaleRepo(tm *TxManager) *SaleRepo {
	return &SaleRepo{
		baseRepo: newBaseRepo(tm, saleTable, func() *sale.Sale { return &sale.Sale{} }),
	}
}

func (r *SaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	return r.insert(ctx, s)
}

func (r *SaleRepo) Delete(ctx context.Context, entityID id.ID) error {
	return r.deleteByID(ctx, entityID)
}

func (r *SaleRepo) List(ctx context.Context) ([]*sale.Sale, error) {
	return r.selectMany(ctx, r.selectBase().OrderBy("doc_date DESC"))
}

func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID id.ID) ([]*sale.Sale, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}

func (r *SaleRepo) ListOnDay(ctx context.Context, day types.CivilDate) ([]*sale.Sale, error) {
	q := r.selectBase().
		Where(onDay("doc_date", day.Time())).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}
