// Package entity provides base types shared by catalogs and documents.
package entity

import (
	"context"
	"time"

	"wakala/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// BaseEntity contains common fields for all entities (catalogs, documents).
type BaseEntity struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// Version for optimistic locking (incremented on each update)
	Version int `db:"version" json:"version"`

	// CreatedAt is set by the repository on insert
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// UpdatedAt is set by the repository on every write
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBaseEntity creates a new BaseEntity with generated ID.
func NewBaseEntity() BaseEntity {
	return BaseEntity{
		ID:      id.New(),
		Version: 1,
	}
}

// Touch increments version (for optimistic locking).
func (b *BaseEntity) Touch() {
	b.Version++
}
