package ports

import (
	"context"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Both storage drivers (the orders.json snapshot store and the Postgres
// store) implement it; every call sees the latest persisted state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ObjectNotFound if no order with the aggregate's id exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFound if no order matches.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByPickupCode retrieves the order whose pickup code matches the
	// supplied text exactly. Returns ObjectNotFound if no order has that code.
	GetByPickupCode(ctx context.Context, code string) (*order.Order, error)

	// GetAll retrieves every order in the collection, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// RemoveAll deletes the entire collection. Maintenance use only.
	RemoveAll(ctx context.Context) error
}
