package ledger

import (
	"context"
	"fmt"

	"wakala/internal/core/id"
	"wakala/internal/core/types"
	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
	"wakala/pkg/logger"
)

// Statement is a counterparty's full account history with running
// base-currency balances.
type Statement struct {
	Entity  *counterparty.Counterparty `json:"entity"`
	Rows    []Row                      `json:"rows"`
	Balance types.Money                `json:"balance"`
}

// Service assembles statements from the document repositories.
type Service struct {
	counterparties counterparty.Repository
	sales          sale.Repository
	purchases      purchase.Repository
	vouchers       voucher.Repository
	rates          *currency.Service
}

// NewService creates a ledger service.
func NewService(
	counterparties counterparty.Repository,
	sales sale.Repository,
	purchases purchase.Repository,
	vouchers voucher.Repository,
	rates *currency.Service,
) *Service {
	return &Service{
		counterparties: counterparties,
		sales:          sales,
		purchases:      purchases,
		vouchers:       vouchers,
		rates:          rates,
	}
}

// Statement loads every document touching the counterparty and returns
// the unified, accumulated account history.
func (s *Service) Statement(ctx context.Context, entityID id.ID) (*Statement, error) {
	cp, err := s.counterparties.GetByID(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("load counterparty: %w", err)
	}

	var (
		sales     []*sale.Sale
		purchases []*purchase.Purchase
	)
	switch cp.Kind {
	case counterparty.KindCustomer:
		sales, err = s.sales.ListByCustomer(ctx, cp.ID)
		if err != nil {
			return nil, fmt.Errorf("list sales: %w", err)
		}
	case counterparty.KindSupplier:
		purchases, err = s.purchases.ListBySupplier(ctx, cp.ID)
		if err != nil {
			return nil, fmt.Errorf("list purchases: %w", err)
		}
	}

	vouchers, err := s.vouchers.ListByEntity(ctx, cp.ID, cp.Kind)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}

	n, err := s.rates.Normalizer(ctx)
	if err != nil {
		return nil, err
	}

	rows := Accumulate(Unify(cp, sales, purchases, vouchers), n)

	logger.Debug(ctx, "built statement",
		"entity", cp.Name,
		"rows", len(rows),
	)

	return &Statement{
		Entity:  cp,
		Rows:    rows,
		Balance: FinalBalance(rows),
	}, nil
}
