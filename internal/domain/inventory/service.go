package inventory

import (
	"context"
	"fmt"

	"wakala/internal/domain/catalogs/item"
	"wakala/internal/domain/documents/purchase"
	"wakala/internal/domain/documents/sale"
)

// Service derives inventory views from the repositories.
type Service struct {
	items             item.Repository
	purchases         purchase.Repository
	sales             sale.Repository
	lowStockThreshold int64
}

// NewService creates an inventory service.
func NewService(items item.Repository, purchases purchase.Repository, sales sale.Repository, lowStockThreshold int64) *Service {
	return &Service{
		items:             items,
		purchases:         purchases,
		sales:             sales,
		lowStockThreshold: lowStockThreshold,
	}
}

// Levels returns the current stock position of every item type.
func (s *Service) Levels(ctx context.Context) ([]Level, error) {
	itemTypes, purchases, sales, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return CalculateAll(itemTypes, purchases, sales, s.lowStockThreshold), nil
}

// Movements returns the movement log of one item type, newest first.
func (s *Service) Movements(ctx context.Context, itemType string) ([]Movement, error) {
	_, purchases, sales, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return Movements(itemType, purchases, sales), nil
}

func (s *Service) load(ctx context.Context) ([]string, []*purchase.Purchase, []*sale.Sale, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list item types: %w", err)
	}
	itemTypes := make([]string, 0, len(items))
	for _, it := range items {
		itemTypes = append(itemTypes, it.Name)
	}
	purchases, err := s.purchases.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list purchases: %w", err)
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list sales: %w", err)
	}
	return itemTypes, purchases, sales, nil
}
