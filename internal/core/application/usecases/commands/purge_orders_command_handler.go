package commands

import (
	"context"
)

// PurgeOrdersCommandHandler removes every order from the store.
type PurgeOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeOrdersCommandHandler creates a handler for the purge maintenance action.
func NewPurgeOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeOrdersCommandHandler {
	return PurgeOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes all orders and returns how many were removed.
func (h *PurgeOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = orderRepo.RemoveAll(ctx); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(existing), nil
}
