package expense

import (
	"context"
	"fmt"

	"wakala/internal/core/id"
	"wakala/pkg/logger"
)

// Service provides business operations for expenses.
type Service struct {
	repo Repository
}

// NewService creates an expense service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates and stores an expense.
func (s *Service) Record(ctx context.Context, doc *Expense) error {
	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("create expense: %w", err)
	}

	logger.Info(ctx, "recorded expense",
		"id", doc.ID,
		"category", doc.Category,
		"amount", doc.Amount,
		"currency", doc.Currency,
	)

	return nil
}

// Remove deletes an expense.
func (s *Service) Remove(ctx context.Context, docID id.ID) error {
	if err := s.repo.Delete(ctx, docID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	logger.Info(ctx, "deleted expense", "id", docID)
	return nil
}

// List returns all expenses, newest first.
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

// Categories returns known category names.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

// AddCategory registers a new category name.
func (s *Service) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	return s.repo.AddCategory(ctx, name)
}

// RemoveCategory deletes a category name.
func (s *Service) RemoveCategory(ctx context.Context, name string) error {
	return s.repo.DeleteCategory(ctx, name)
}
