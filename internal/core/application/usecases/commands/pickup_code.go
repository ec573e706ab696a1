package commands

import (
	"context"
	"errors"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/ports"
	"campuseats/internal/pkg/errs"
)

// maxPickupCodeAttempts bounds collision retries when drawing a fresh code.
// With a 32^6 code space and demo-scale volume a single draw almost always
// suffices; the retry exists so two orders never share a code in practice.
const maxPickupCodeAttempts = 5

// newUniquePickupCode draws pickup codes until one is found that no stored
// order uses, up to maxPickupCodeAttempts. If every draw collides the last
// one is returned anyway; code assignment is best effort and never fails the
// request.
func newUniquePickupCode(ctx context.Context, repo ports.OrderRepository) (kernel.PickupCode, error) {
	var code kernel.PickupCode
	for range maxPickupCodeAttempts {
		code = kernel.GeneratePickupCode()

		_, err := repo.GetByPickupCode(ctx, code.String())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return code, nil
		}
		if err != nil {
			return kernel.PickupCode{}, err
		}
		// code is taken, draw again
	}
	return code, nil
}
