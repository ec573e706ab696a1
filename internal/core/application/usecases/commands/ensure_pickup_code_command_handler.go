package commands

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// EnsurePickupCodeCommandHandler returns an order's pickup code, assigning and
// persisting one first when the order lacks it. An existing code is never
// replaced; orders that already carry one are read without a write.
type EnsurePickupCodeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEnsurePickupCodeCommandHandler creates a handler for pickup-code requests.
func NewEnsurePickupCodeCommandHandler(uowFactory OrderUoWFactory) EnsurePickupCodeCommandHandler {
	return EnsurePickupCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order with its pickup code guaranteed to be assigned.
// Returns ObjectNotFound if no order matches the id.
func (h *EnsurePickupCodeCommandHandler) Handle(
	ctx context.Context,
	cmd EnsurePickupCodeCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !aggregate.PickupCode().IsZero() {
		// Nothing to persist; the deferred rollback releases the unit of work.
		return aggregate, nil
	}

	candidate, err := newUniquePickupCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}
	aggregate.EnsurePickupCode(candidate)

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
