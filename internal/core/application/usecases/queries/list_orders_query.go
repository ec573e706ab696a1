// Package queries contains read operations in the CQRS architecture.
// Queries never modify state; they load the current collection and shape it
// for consumers.
package queries

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves all displayable orders for the storefront's
// "my orders" view and the vendor dashboard.
//
// The display filter hides malformed or zero-value records (empty items,
// non-positive amount) that may exist in the backing store; it is not a
// validation gate on write.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to retrieve displayable orders.
// This is a parameterless query over the full collection.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
