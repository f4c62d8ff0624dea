package item

import (
	"context"
	"fmt"

	"wakala/internal/core/apperror"
	"wakala/pkg/logger"
)

// Service provides business logic for the item-type catalog.
type Service struct {
	repo Repository
}

// NewService creates an item service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add registers a new item type.
func (s *Service) Add(ctx context.Context, name string) (*Item, error) {
	it := New(name)
	if err := it.Validate(ctx); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check item exists: %w", err)
	}
	if exists {
		return nil, apperror.NewDuplicate("item", "name", name)
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	logger.Info(ctx, "added item type", "name", name)
	return it, nil
}

// Remove deletes an item type by name.
func (s *Service) Remove(ctx context.Context, name string) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Names lists all item-type names.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names, nil
}
