// Package item provides the catalog of stocked item types (qat varieties).
// Item types are names: documents reference them by value, and the
// inventory calculator keys its levels on them.
package item

import (
	"context"

	"wakala/internal/core/entity"
)

// Item is one stocked variety.
type Item struct {
	entity.Catalog
}

// New creates an item type.
func New(name string) *Item {
	return &Item{Catalog: entity.NewCatalog(name, name)}
}

// Validate implements entity.Validatable.
func (i *Item) Validate(ctx context.Context) error {
	return i.Catalog.Validate(ctx)
}
