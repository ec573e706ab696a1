package commands

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// PickupOrderByCodeCommandHandler handles code-based pickup.
// The order is located by scanning for a matching pickup code; since the code
// itself identified the order, the match check always passes and the order is
// marked Picked. Repeating the call for an already-picked order succeeds again.
type PickupOrderByCodeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPickupOrderByCodeCommandHandler creates a handler for code-based pickup.
func NewPickupOrderByCodeCommandHandler(uowFactory OrderUoWFactory) PickupOrderByCodeCommandHandler {
	return PickupOrderByCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order carrying the code as picked up and returns it.
// Returns ObjectNotFound if no order has that pickup code.
func (h *PickupOrderByCodeCommandHandler) Handle(
	ctx context.Context,
	cmd PickupOrderByCodeCommand,
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

	aggregate, err := orderRepo.GetByPickupCode(ctx, cmd.Code())
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
