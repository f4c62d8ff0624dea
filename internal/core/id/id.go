// Package id generates entity identifiers. Every row in the system keys
// on a UUIDv7 so inserts stay roughly append-ordered in the B-tree and
// document lists sort by creation time without extra indexes.
package id

import (
	"github.com/google/uuid"
)

// ID is the identifier type shared by all entities.
type ID = uuid.UUID

// New generates a time-ordered UUIDv7.
func New() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; a V4 keeps the
		// insert alive at the cost of ordering.
		return uuid.New()
	}
	return id
}

// Parse converts a string to an ID with validation.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse is Parse for fixtures and tests; panics on bad input.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns the zero ID.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether id is the zero ID.
func IsNil(id ID) bool {
	return id == uuid.Nil
}
