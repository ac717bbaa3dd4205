package ports

import (
	"context"
)

// OrderSequence allocates business order numbers. Next must be safe under
// concurrent checkouts: two calls never return the same value, with no
// gaps required.
type OrderSequence interface {
	// Next returns the next order number.
	Next(ctx context.Context) (int64, error)
}

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// StockRepository returns a StockRepository bound to the current
	// transaction when one is active.
	StockRepository() StockRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction when one is active.
	OrderRepository() OrderRepository

	// DriverRepository returns a DriverRepository bound to the current
	// transaction when one is active.
	DriverRepository() DriverRepository

	// OrderSequence returns the order number sequence bound to the current
	// transaction when one is active.
	OrderSequence() OrderSequence
}
