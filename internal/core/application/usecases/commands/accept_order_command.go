package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
)

// AcceptOrderCommand represents a vendor accepting an order by its id.
// This path sets the status to Accepted unconditionally, regardless of how far
// along the order already is.
type AcceptOrderCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept the order with the given id.
// Returns an error if the id is invalid.
func NewAcceptOrderCommand(orderID kernel.OrderID) (AcceptOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}
