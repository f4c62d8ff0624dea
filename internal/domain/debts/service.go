package debts

import (
	"context"
	"fmt"
	"time"

	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
)

// Service builds debt reports from the repositories.
type Service struct {
	counterparties counterparty.Repository
	sales          sale.Repository
	purchases      purchase.Repository
	vouchers       voucher.Repository
	rates          *currency.Service
	policy         AgingPolicy

	// now is swappable for tests
	now func() time.Time
}

// NewService creates a debts service.
func NewService(
	counterparties counterparty.Repository,
	sales sale.Repository,
	purchases purchase.Repository,
	vouchers voucher.Repository,
	rates *currency.Service,
	policy AgingPolicy,
) *Service {
	return &Service{
		counterparties: counterparties,
		sales:          sales,
		purchases:      purchases,
		vouchers:       vouchers,
		rates:          rates,
		policy:         policy,
		now:            time.Now,
	}
}

// Customers returns the debt position of every customer, largest first.
func (s *Service) Customers(ctx context.Context) ([]Debt, error) {
	customers, err := s.counterparties.ListByKind(ctx, counterparty.KindCustomer)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	vouchers, err := s.vouchers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	n, err := s.rates.Normalizer(ctx)
	if err != nil {
		return nil, err
	}

	return AggregateCustomers(customers, sales, vouchers, n, s.policy, s.now()), nil
}

// Suppliers returns the debt position of every supplier, largest first.
func (s *Service) Suppliers(ctx context.Context) ([]Debt, error) {
	suppliers, err := s.counterparties.ListByKind(ctx, counterparty.KindSupplier)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	vouchers, err := s.vouchers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	n, err := s.rates.Normalizer(ctx)
	if err != nil {
		return nil, err
	}

	return AggregateSuppliers(suppliers, purchases, vouchers, n, s.policy, s.now()), nil
}

// TotalOutstanding sums the base-currency totals of a debt report.
func TotalOutstanding(debts []Debt) types.Money {
	total := types.Zero()
	for i := range debts {
		total = total.Add(debts[i].TotalBase)
	}
	return total
}
