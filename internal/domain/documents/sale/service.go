package sale

import (
	"context"
	"fmt"

	"wakala/internal/core/id"
	"wakala/pkg/logger"
)

// Service provides business operations for sale documents.
type Service struct {
	repo Repository
}

// NewService creates a sale service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and stores a sale.
func (s *Service) Record(ctx context.Context, doc *Sale) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("create sale: %w", err)
	}

	logger.Info(ctx, "recorded sale",
		"id", doc.ID,
		"item", doc.ItemType,
		"qty", doc.Quantity,
		"total", doc.Total,
		"currency", doc.Currency,
		"return", doc.IsReturn,
	)

	return nil
}

// Remove deletes a sale document.
func (s *Service) Remove(ctx context.Context, docID id.ID) error {
	if err := s.repo.Delete(ctx, docID); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	logger.Info(ctx, "deleted sale", "id", docID)
	return nil
}

// List returns all sales, newest first.
func (s *Service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}
