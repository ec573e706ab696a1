package commands

import (
	"errors"

	"campuseats/internal/pkg/errs"
	"campuseats/internal/pkg/guard"
)

var (
	ErrAcceptOrderByCodeCommandIsNotConstructed = errors.New(
		"AcceptOrderByCodeCommand must be created via NewAcceptOrderByCodeCommand constructor",
	)
)

// AcceptOrderByCodeCommand represents a vendor accepting an order by scanning
// or pasting its pickup code. This is the only transition in the system with a
// monotonicity guard: an order at or past Accepted keeps its status.
type AcceptOrderByCodeCommand struct {
	code string

	guard guard.ConstructorGuard
}

// NewAcceptOrderByCodeCommand creates a command to accept the order carrying
// the supplied pickup code. Returns an error if the code is empty; the code is
// otherwise taken verbatim since an unknown code simply matches no order.
func NewAcceptOrderByCodeCommand(code string) (AcceptOrderByCodeCommand, error) {
	if code == "" {
		return AcceptOrderByCodeCommand{}, errs.NewValueIsRequiredError("code")
	}

	return AcceptOrderByCodeCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderByCodeCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderByCodeCommandIsNotConstructed)
}

// Code returns the supplied pickup code.
func (c AcceptOrderByCodeCommand) Code() string {
	return c.code
}
