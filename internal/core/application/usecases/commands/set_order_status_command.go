package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var (
	ErrSetOrderStatusCommandIsNotConstructed = errors.New(
		"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
	)
)

// SetOrderStatusCommand represents a direct status update from the vendor
// dashboard (e.g. Preparing, Ready, Picked). The new status replaces the
// current one unconditionally; only membership in the fixed set is checked.
type SetOrderStatusCommand struct {
	orderID kernel.OrderID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand creates a command to overwrite an order's status.
// Returns an error if the id is invalid or the status is not a member of the
// fixed set.
func NewSetOrderStatusCommand(orderID kernel.OrderID, status order.Status) (SetOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the status to apply.
func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}
