package backup

import (
	"context"
	"fmt"

	"wakala/internal/domain/catalogs/counterparty"
	"wakala/internal/domain/catalogs/item"
	"wakala/internal/domain/currency"
	"wakala/internal/domain/documents/expense"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
	"wakala/internal/domain/documents/voucher"
	"wakala/pkg/logger"
)

// rateExportDepth bounds how much rate history an archive carries.
const rateExportDepth = 365

// Service exports and restores full archives.
type Service struct {
	codec *Codec

	counterparties counterparty.Repository
	items          item.Repository
	sales          sale.Repository
	purchases      purchase.Repository
	vouchers       voucher.Repository
	expenses       expense.Repository
	rates          currency.Repository
}

// NewService creates a backup service.
func NewService(
	codec *Codec,
	counterparties counterparty.Repository,
	items item.Repository,
	sales sale.Repository,
	purchases purchase.Repository,
	vouchers voucher.Repository,
	expenses expense.Repository,
	rates currency.Repository,
) *Service {
	return &Service{
		codec:          codec,
		counterparties: counterparties,
		items:          items,
		sales:          sales,
		purchases:      purchases,
		vouchers:       vouchers,
		expenses:       expenses,
		rates:          rates,
	}
}

// Export snapshots every collection into a compressed archive.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	payload, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.codec.Encode(NewArchive(payload))
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "exported backup archive",
		"counterparties", len(payload.Counterparties),
		"sales", len(payload.Sales),
		"purchases", len(payload.Purchases),
		"bytes", len(data),
	)

	return data, nil
}

// Restore decodes an archive and writes its contents back through the
// repositories. Existing rows with the same IDs are the storage layer's
// conflict to resolve.
func (s *Service) Restore(ctx context.Context, data []byte) error {
	a, err := s.codec.Decode(data)
	if err != nil {
		return err
	}

	for _, cp := range a.Data.Counterparties {
		if err := s.counterparties.Create(ctx, cp); err != nil {
			return fmt.Errorf("restore counterparty %s: %w", cp.Name, err)
		}
	}
	for _, name := range a.Data.ItemTypes {
		it := item.New(name)
		if err := s.items.Create(ctx, it); err != nil {
			return fmt.Errorf("restore item type %s: %w", name, err)
		}
	}
	for _, doc := range a.Data.Sales {
		if err := s.sales.Create(ctx, doc); err != nil {
			return fmt.Errorf("restore sale: %w", err)
		}
	}
	for _, doc := range a.Data.Purchases {
		if err := s.purchases.Create(ctx, doc); err != nil {
			return fmt.Errorf("restore purchase: %w", err)
		}
	}
	for _, doc := range a.Data.Vouchers {
		if err := s.vouchers.Create(ctx, doc); err != nil {
			return fmt.Errorf("restore voucher: %w", err)
		}
	}
	for _, doc := range a.Data.Expenses {
		if err := s.expenses.Create(ctx, doc); err != nil {
			return fmt.Errorf("restore expense: %w", err)
		}
	}
	for _, r := range a.Data.RateHistory {
		if err := s.rates.Record(ctx, r); err != nil {
			return fmt.Errorf("restore rate: %w", err)
		}
	}

	logger.Info(ctx, "restored backup archive",
		"exportedAt", a.ExportedAt,
		"counterparties", len(a.Data.Counterparties),
	)

	return nil
}

func (s *Service) collect(ctx context.Context) (Payload, error) {
	var p Payload
	var err error

	customers, err := s.counterparties.ListByKind(ctx, counterparty.KindCustomer)
	if err != nil {
		return p, fmt.Errorf("list customers: %w", err)
	}
	suppliers, err := s.counterparties.ListByKind(ctx, counterparty.KindSupplier)
	if err != nil {
		return p, fmt.Errorf("list suppliers: %w", err)
	}
	p.Counterparties = append(customers, suppliers...)

	items, err := s.items.List(ctx)
	if err != nil {
		return p, fmt.Errorf("list item types: %w", err)
	}
	for _, it := range items {
		p.ItemTypes = append(p.ItemTypes, it.Name)
	}

	if p.Sales, err = s.sales.List(ctx); err != nil {
		return p, fmt.Errorf("list sales: %w", err)
	}
	if p.Purchases, err = s.purchases.List(ctx); err != nil {
		return p, fmt.Errorf("list purchases: %w", err)
	}
	if p.Vouchers, err = s.vouchers.List(ctx); err != nil {
		return p, fmt.Errorf("list vouchers: %w", err)
	}
	if p.Expenses, err = s.expenses.List(ctx); err != nil {
		return p, fmt.Errorf("list expenses: %w", err)
	}
	if p.RateHistory, err = s.rates.ListHistory(ctx, rateExportDepth); err != nil {
		return p, fmt.Errorf("list rate history: %w", err)
	}

	return p, nil
}
