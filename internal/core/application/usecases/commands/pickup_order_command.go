package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

var (
	ErrPickupOrderCommandIsNotConstructed = errors.New(
		"PickupOrderCommand must be created via NewPickupOrderCommand constructor",
	)
)

// PickupOrderCommand represents a vendor marking an order as picked up after
// the student presents its pickup code. The order is located by id; the
// supplied code must exactly match the stored one.
type PickupOrderCommand struct {
	orderID kernel.OrderID
	code    string

	guard guard.ConstructorGuard
}

// NewPickupOrderCommand creates a command to mark the order as picked up.
// Returns an error if the id is invalid or the code is empty.
func NewPickupOrderCommand(orderID kernel.OrderID, code string) (PickupOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PickupOrderCommand{}, err
	}
	if code == "" {
		return PickupOrderCommand{}, errs.NewValueIsRequiredError("code")
	}

	return PickupOrderCommand{
		orderID: orderID,
		code:    code,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickupOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being picked up.
func (c PickupOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Code returns the supplied pickup code.
func (c PickupOrderCommand) Code() string {
	return c.code
}
