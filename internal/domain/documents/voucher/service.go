package voucher

import (
	"context"
	"fmt"

	"wakala/internal/core/id"
	"wakala/pkg/logger"
)

// Service provides business operations for vouchers.
type Service struct {
	repo Repository
}

// NewService creates a voucher service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and stores a voucher.
func (s *Service) Record(ctx context.Context, doc *Voucher) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("create voucher: %w", err)
	}

	logger.Info(ctx, "recorded voucher",
		"id", doc.ID,
		"kind", doc.Kind,
		"entity", doc.EntityName,
		"amount", doc.Amount,
		"currency", doc.Currency,
	)

	return nil
}

// Remove deletes a voucher.
func (s *Service) Remove(ctx context.Context, docID id.ID) error {
	if err := s.repo.Delete(ctx, docID); err != nil {
		return fmt.Errorf("delete voucher: %w", err)
	}
	logger.Info(ctx, "deleted voucher", "id", docID)
	return nil
}

// List returns all vouchers, newest first.
func (s *Service) List(ctx context.Context) ([]*Voucher, error) {
	return s.repo.List(ctx)
}
