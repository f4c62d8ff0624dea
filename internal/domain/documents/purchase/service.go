package purchase

import (
	"context"
	"fmt"

	"wakala/internal/core/id"
	"wakala/pkg/logger"
)

// Service provides business operations for purchase documents.
type Service struct {
	repo Repository
}

// NewService creates a purchase service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and stores a purchase.
func (s *Service) Record(ctx context.Context, doc *Purchase) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}

	logger.Info(ctx, "recorded purchase",
		"id", doc.ID,
		"supplier", doc.SupplierName,
		"item", doc.ItemType,
		"qty", doc.Quantity,
		"total_cost", doc.TotalCost,
		"currency", doc.Currency,
		"return", doc.IsReturn,
	)

	return nil
}

// Remove deletes a purchase document.
func (s *Service) Remove(ctx context.Context, docID id.ID) error {
	if err := s.repo.Delete(ctx, docID); err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	logger.Info(ctx, "deleted purchase", "id", docID)
	return nil
}

// List returns all purchases, newest first.
func (s *Service) List(ctx context.Context) ([]*Purchase, error) {
	return s.repo.List(ctx)
}
