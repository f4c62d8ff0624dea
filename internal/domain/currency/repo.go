package currency

import (
	"context"
)

// Repository defines persistence for the exchange-rate history.
type Repository interface {
	// ListHistory returns snapshots newest first. A limit of zero or less
	// returns the complete timeline.
	ListHistory(ctx context.Context, limit int) (History, error)

	// Record appends a new snapshot.
	Record(ctx context.Context, rate Rate) error
}
