package item

import (
	"context"
)

// Repository defines persistence for the item-type catalog.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	DeleteByName(ctx context.Context, name string) error
	List(ctx context.Context) ([]*Item, error)
	Exists(ctx context.Context, name string) (bool, error)
}
