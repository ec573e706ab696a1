package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary around one
// load-mutate-save cycle. The Postgres driver maps it onto a database
// transaction; the jsonfile driver holds the store's single mutation lock from
// Begin until Commit or Rollback, so concurrent writers cannot lose updates.
// Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction (or takes the store lock).
	Begin(ctx context.Context) error

	// Commit persists the changes made through the repositories.
	// Returns error if no transaction is active or the write fails.
	Commit(ctx context.Context) error

	// Rollback discards the changes. Safe to defer after a successful
	// Commit on drivers that treat a second completion as an error the
	// caller ignores.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to this transaction.
	OrderRepository() OrderRepository
}
