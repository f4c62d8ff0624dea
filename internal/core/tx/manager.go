// Package tx defines the transaction boundary contract so services never
// import the storage layer directly.
package tx

import "context"

// Manager runs a function inside a database transaction. An error from
// fn rolls back, success commits. Nested calls join the outer
// transaction.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager extends Manager for query-only work.
type ReadOnlyManager interface {
	Manager

	// ReadOnly executes fn in a read-only transaction.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
