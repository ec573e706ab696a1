package commands

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// PickupOrderCommandHandler handles id-based pickup.
// The supplied code is verified against the stored pickup code before the
// order is marked Picked; a mismatch surfaces as ErrPickupCodeMismatch, which
// the transport maps to an authorization failure. Marking an already-picked
// order succeeds again (idempotent, no double-pickup guard).
type PickupOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPickupOrderCommandHandler creates a handler for id-based pickup.
func NewPickupOrderCommandHandler(uowFactory OrderUoWFactory) PickupOrderCommandHandler {
	return PickupOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order as picked up and returns it.
// Returns ObjectNotFound if no order matches the id, or
// order.ErrPickupCodeMismatch if the code does not match.
func (h *PickupOrderCommandHandler) Handle(ctx context.Context, cmd PickupOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Pickup(cmd.Code()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
