package commands

import (
	"errors"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a checkout payload from the storefront.
// Items and amounts are carried as given; the service assigns identity,
// creation time, and pickup code when handling the command.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Details{
//	    Items:   []order.Item{{ItemID: "41", Name: "Pizza", Price: 200, Qty: 1}},
//	    Total:   200,
//	    Payable: 200,
//	    Outlet:  "Snackers",
//	})
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The payload is deliberately not content-validated here: empty items or zero
// amounts are accepted on write and hidden by the listing read path instead.
// A non-zero Status in details must be a member of the fixed set; that is
// checked when the aggregate is constructed.
func NewCreateOrderCommand(details order.Details) (CreateOrderCommand, error) {
	return CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Details returns the caller-supplied order payload.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}
