package currency

import (
	"context"
	"fmt"
	"time"

	"wakala/internal/core/types"
	"wakala/pkg/logger"
)

// historyDepth bounds the History listing served to clients. Conversion
// never uses this window: the normalizer loads the full timeline, because
// statements reach back to arbitrarily old opening balances and an exact
// day match must find any recorded snapshot.
const historyDepth = 20

// Service provides rate recording and normalizer construction.
type Service struct {
	repo     Repository
	fallback Rate
}

// NewService creates a currency service. The fallback rate applies only
// while the history is empty (fresh installs).
func NewService(repo Repository, fallbackSAR, fallbackOMR types.Money) *Service {
	return &Service{
		repo:     repo,
		fallback: NewRate(fallbackSAR, fallbackOMR, time.Now()),
	}
}

// History returns the rate timeline, newest first.
func (s *Service) History(ctx context.Context) (History, error) {
	h, err := s.repo.ListHistory(ctx, historyDepth)
	if err != nil {
		return nil, fmt.Errorf("list rate history: %w", err)
	}
	return h, nil
}

// Normalizer builds a conversion snapshot over the complete history.
func (s *Service) Normalizer(ctx context.Context) (Normalizer, error) {
	h, err := s.repo.ListHistory(ctx, 0)
	if err != nil {
		return Normalizer{}, fmt.Errorf("list rate history: %w", err)
	}
	return NewNormalizer(h, s.fallback), nil
}

// Record stores a new daily snapshot after validation.
func (s *Service) Record(ctx context.Context, rate Rate) error {
	if err := rate.Validate(ctx); err != nil {
		return err
	}

	if err := s.repo.Record(ctx, rate); err != nil {
		return fmt.Errorf("record rate: %w", err)
	}

	logger.Info(ctx, "recorded exchange rate",
		"sar", rate.SAR,
		"omr", rate.OMR,
		"date", rate.Date,
	)

	return nil
}
