package commands

import (
	"context"

	"campuseats/internal/core/domain/model/order"
)

// AcceptOrderByCodeCommandHandler handles code-based order acceptance.
// Locates the order by pickup code and advances it to Accepted only when it
// has not yet reached that position in the progression; an order already at or
// past Accepted is returned unchanged, still as a success.
type AcceptOrderByCodeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderByCodeCommandHandler creates a handler for code-based acceptance.
func NewAcceptOrderByCodeCommandHandler(uowFactory OrderUoWFactory) AcceptOrderByCodeCommandHandler {
	return AcceptOrderByCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle accepts the order carrying the code and returns it.
// Returns ObjectNotFound if no order has that pickup code.
func (h *AcceptOrderByCodeCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptOrderByCodeCommand,
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

	aggregate.AcceptForward()

	// The record is rewritten whether or not the status moved, so the
	// response always reflects stored state.
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
