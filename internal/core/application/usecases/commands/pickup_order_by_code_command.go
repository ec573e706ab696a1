package commands

import (
	"errors"

	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

var (
	ErrPickupOrderByCodeCommandIsNotConstructed = errors.New(
		"PickupOrderByCodeCommand must be created via NewPickupOrderByCodeCommand constructor",
	)
)

// PickupOrderByCodeCommand represents a vendor marking an order as picked up
// by its pickup code alone, without knowing the order id.
type PickupOrderByCodeCommand struct {
	code string

	guard guard.ConstructorGuard
}

// NewPickupOrderByCodeCommand creates a command to pick up the order carrying
// the supplied code. Returns an error if the code is empty.
func NewPickupOrderByCodeCommand(code string) (PickupOrderByCodeCommand, error) {
	if code == "" {
		return PickupOrderByCodeCommand{}, errs.NewValueIsRequiredError("code")
	}

	return PickupOrderByCodeCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupOrderByCodeCommand) Validate() error {
	return c.guard.Validate(ErrPickupOrderByCodeCommandIsNotConstructed)
}

// Code returns the supplied pickup code.
func (c PickupOrderByCodeCommand) Code() string {
	return c.code
}
