package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/documents/voucher"
)

const voucherTable = "vouchers"

// VoucherRepo implements voucher.Repository.
type VoucherRepo struct {
	baseRepo[*voucher.Voucher]
}

var _ voucher.Repository = (*VoucherRepo)(nil)

// NewVoucherRepo creates a voucher repository.
func NewVoucherRepo(tm *TxManager) *VoucherRepo {
	return &VoucherRepo{
		baseRepo: newBaseRepo(tm, voucherTable, func() *voucher.Voucher { return &voucher.Voucher{} }),
	}
}

func (r *VoucherRepo) Create(ctx context.Context, v *voucher.Voucher) error {
	return r.insert(ctx, v)
}

func (r *VoucherRepo) Delete(ctx context.Context, entityID id.ID) error {
	return r.deleteByID(ctx, entityID)
}

func (r *VoucherRepo) List(ctx context.Context) ([]*voucher.Voucher, error) {
	return r.selectMany(ctx, r.selectBase().OrderBy("doc_date DESC"))
}

func (r *VoucherRepo) ListByEntity(ctx context.Context, entityID id.ID, kind counterparty.Kind) ([]*voucher.Voucher, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"entity_id": entityID}).
		Where(squirrel.Eq{"entity_kind": kind}).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}

func (r *VoucherRepo) ListOnDay(ctx context.Context, day types.CivilDate) ([]*voucher.Voucher, error) {
	q := r.selectBase().
		Where(onDay("doc_date", day.Time())).
		OrderBy("doc_date ASC")
	return r.selectMany(ctx, q)
}
