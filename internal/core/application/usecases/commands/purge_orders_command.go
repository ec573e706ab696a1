package commands

import (
	"errors"

	"campuseats/internal/pkg/guard"
)

var (
	ErrPurgeOrdersCommandIsNotConstructed = errors.New(
		"PurgeOrdersCommand must be created via NewPurgeOrdersCommand constructor",
	)
)

// PurgeOrdersCommand deletes the entire order collection. This is the
// maintenance action used to reset the demo between sessions; nothing in the
// normal storefront or vendor flow deletes orders.
type PurgeOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeOrdersCommand creates a command to purge all orders.
func NewPurgeOrdersCommand() PurgeOrdersCommand {
	return PurgeOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PurgeOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOrdersCommandIsNotConstructed)
}
