package counterparty

import (
	"context"
	"fmt"

	"wakala/internal/core/apperror"
	"wakala/internal/core/id"
	"wakala/pkg/logger"
)

// Service provides business logic for the counterparty catalog.
type Service struct {
	repo Repository
}

// NewService creates a counterparty service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a new counterparty.
func (s *Service) Create(ctx context.Context, cp *Counterparty) error {
	if err := cp.Validate(ctx); err != nil {
		return err
	}

	if existing, err := s.repo.FindByName(ctx, cp.Kind, cp.Name); err == nil && existing != nil && existing.ID != cp.ID {
		return apperror.NewDuplicate("counterparty", "name", cp.Name)
	}

	if err := s.repo.Create(ctx, cp); err != nil {
		return fmt.Errorf("create counterparty: %w", err)
	}

	logger.Info(ctx, "created counterparty",
		"id", cp.ID,
		"kind", cp.Kind,
		"name", cp.Name,
	)

	return nil
}

// Update validates and stores changes, including opening-balance edits.
func (s *Service) Update(ctx context.Context, cp *Counterparty) error {
	if err := cp.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, cp); err != nil {
		return fmt.Errorf("update counterparty: %w", err)
	}

	return nil
}

// Delete removes a counterparty and, through the schema cascade, all of
// its ledger contributions.
func (s *Service) Delete(ctx context.Context, cpID id.ID) error {
	if err := s.repo.Delete(ctx, cpID); err != nil {
		return fmt.Errorf("delete counterparty: %w", err)
	}

	logger.Info(ctx, "deleted counterparty", "id", cpID)
	return nil
}

// Get retrieves a counterparty by id.
func (s *Service) Get(ctx context.Context, cpID id.ID) (*Counterparty, error) {
	cp, err := s.repo.GetByID(ctx, cpID)
	if err != nil {
		return nil, err
	}
	return cp, nil
}

// Customers lists all customers ordered by name.
func (s *Service) Customers(ctx context.Context) ([]*Counterparty, error) {
	return s.repo.ListByKind(ctx, KindCustomer)
}

// Suppliers lists all suppliers ordered by name.
func (s *Service) Suppliers(ctx context.Context) ([]*Counterparty, error) {
	return s.repo.ListByKind(ctx, KindSupplier)
}
