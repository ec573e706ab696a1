package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrEnsurePickupCodeCommandIsNotConstructed = errors.New(
		"EnsurePickupCodeCommand must be created via NewEnsurePickupCodeCommand constructor",
	)
)

// EnsurePickupCodeCommand requests an order's pickup code for display (e.g.
// the storefront's QR view). Orders written before codes existed get one
// assigned lazily, which is why this read is modeled as a command: it may
// persist.
type EnsurePickupCodeCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewEnsurePickupCodeCommand creates a command to fetch (and if necessary
// assign) the pickup code of the order with the given id.
func NewEnsurePickupCodeCommand(orderID kernel.OrderID) (EnsurePickupCodeCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EnsurePickupCodeCommand{}, err
	}

	return EnsurePickupCodeCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsurePickupCodeCommand) Validate() error {
	return c.guard.Validate(ErrEnsurePickupCodeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose code is requested.
func (c EnsurePickupCodeCommand) OrderID() kernel.OrderID {
	return c.orderID
}
