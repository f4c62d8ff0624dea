package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"wakala/internal/core/id"
	"wakala/internal/domain/catalogs/counterparty"
)

const counterpartyTable = "counterparties"

// CounterpartyRepo implements counterparty.Repository.
type CounterpartyRepo struct {
	baseRepo[*counterparty.Counterparty]
}

var _ counterparty.Repository = (*CounterpartyRepo)(nil)

// NewCounterpartyRepo creates a counterparty repository.
func NewCounterpartyRepo(tm *TxManager) *CounterpartyRepo {
	return &CounterpartyRepo{
		baseRepo: newBaseRepo(tm, counterpartyTable,
			func() *counterparty.Counterparty { return &counterparty.Counterparty{} }),
	}
}

func (r *CounterpartyRepo) Create(ctx context.Context, cp *counterparty.Counterparty) error {
	return r.insert(ctx, cp)
}

func (r *CounterpartyRepo) Update(ctx context.Context, cp *counterparty.Counterparty) error {
	return r.update(ctx, cp)
}

func (r *CounterpartyRepo) Delete(ctx context.Context, entityID id.ID) error {
	return r.deleteByID(ctx, entityID)
}

func (r *CounterpartyRepo) GetByID(ctx context.Context, entityID id.ID) (*counterparty.Counterparty, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)
	return r.selectOne(ctx, q, entityID.String())
}

func (r *CounterpartyRepo) ListByKind(ctx context.Context, kind counterparty.Kind) ([]*counterparty.Counterparty, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"kind": kind}).
		OrderBy("name ASC")
	return r.selectMany(ctx, q)
}

func (r *CounterpartyRepo) FindByName(ctx context.Context, kind counterparty.Kind, name string) (*counterparty.Counterparty, error) {
	q := r.selectBase().
		Where(squirrel.Eq{"kind": kind}).
		Where(squirrel.Eq{"name": name}).
		Limit(1)
	return r.selectOne(ctx, q, name)
}
