package closing

import (
	"context"
	"fmt"

	"wakala/internal/core/apperror"
	"wakala/internal/core/types"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
	"wakala/pkg/logger"
)

const historyLimit = 60

// Service computes and finalizes daily closings.
type Service struct {
	closings  Repository
	sales     sale.Repository
	purchases purchase.Repository
	expenses  expense.Repository
	vouchers  voucher.Repository
	rates     *currency.Service
}

// NewService creates a closing service.
func NewService(
	closings Repository,
	sales sale.Repository,
	purchases purchase.Repository,
	expenses expense.Repository,
	vouchers voucher.Repository,
	rates *currency.Service,
) *Service {
	return &Service{
		closings:  closings,
		sales:     sales,
		purchases: purchases,
		expenses:  expenses,
		vouchers:  vouchers,
		rates:     rates,
	}
}

// Summary computes the reconciliation picture for a day without storing
// anything.
func (s *Service) Summary(ctx context.Context, day types.CivilDate) (Summary, error) {
	sales, err := s.sales.ListOnDay(ctx, day)
	if err != nil {
		return Summary{}, fmt.Errorf("list sales: %w", err)
	}
	purchases, err := s.purchases.ListOnDay(ctx, day)
	if err != nil {
		return Summary{}, fmt.Errorf("list purchases: %w", err)
	}
	expenses, err := s.expenses.ListOnDay(ctx, day)
	if err != nil {
		return Summary{}, fmt.Errorf("list expenses: %w", err)
	}
	vouchers, err := s.vouchers.ListOnDay(ctx, day)
	if err != nil {
		return Summary{}, fmt.Errorf("list vouchers: %w", err)
	}
	n, err := s.rates.Normalizer(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Compute(day, sales, purchases, expenses, vouchers, n), nil
}

// Finalize seals a day against the counted drawer. A day can only be
// finalized once.
func (s *Service) Finalize(ctx context.Context, day types.CivilDate, actualCash types.Money, note string) (*DailyClosing, error) {
	exists, err := s.closings.ExistsForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("check closing: %w", err)
	}
	if exists {
		return nil, apperror.NewBusinessRule(apperror.CodeClosingFinalized, "day is already finalized").
			WithDetail("day", day.String())
	}

	summary, err := s.Summary(ctx, day)
	if err != nil {
		return nil, err
	}

	record := NewDailyClosing(summary, actualCash, note)
	if err := record.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.closings.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store closing: %w", err)
	}

	logger.Info(ctx, "finalized daily closing",
		"day", day,
		"expected", record.ExpectedCash,
		"actual", record.ActualCash,
		"difference", record.Difference,
	)

	return record, nil
}

// History returns finalized closings, newest first.
func (s *Service) History(ctx context.Context) ([]*DailyClosing, error) {
	return s.closings.List(ctx, historyLimit)
}
