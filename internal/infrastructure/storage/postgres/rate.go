package postgres

import (
	"context"

	"wakala/internal/domain/currency"
)

const rateTable = "exchange_rates"

// RateRepo implements currency.Repository.
type RateRepo struct {
	baseRepo[*currency.Rate]
}

var _ currency.Repository = (*RateRepo)(nil)

// NewRateRepo creates an exchange-rate repository.
func NewRateRepo(tm *TxManager) *RateRepo {
	return &RateRepo{
		baseRepo: newBaseRepo(tm, rateTable, func() *currency.Rate { return &currency.Rate{} }),
	}
}

// ListHistory returns rate snapshots newest first, as the normalizer
// expects.
func (r *RateRepo) ListHistory(ctx context.Context, limit int) (currency.History, error) {
	q := r.selectBase().OrderBy("rate_date DESC", "created_at DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	rates, err := r.selectMany(ctx, q)
	if err != nil {
		return nil, err
	}

	history := make(currency.History, 0, len(rates))
	for _, rate := range rates {
		history = append(history, *rate)
	}
	return history, nil
}

func (r *RateRepo) Record(ctx context.Context, rate currency.Rate) error {
	return r.insert(ctx, &rate)
}
