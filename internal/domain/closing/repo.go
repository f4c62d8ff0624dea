package closing

import (
	"context"

	"wakala/internal/core/types"
)

// Repository defines persistence for finalized closings.
type Repository interface {
	Create(ctx context.Context, c *DailyClosing) error

	// GetByDay returns the closing for a day, or a not-found error.
	GetByDay(ctx context.Context, day types.CivilDate) (*DailyClosing, error)

	// ExistsForDay reports whether the day is already finalized.
	ExistsForDay(ctx context.Context, day types.CivilDate) (bool, error)

	// List returns finalized closings, newest first.
	List(ctx context.Context, limit int) ([]*DailyClosing, error)
}
