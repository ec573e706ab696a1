package queries

import (
	"context"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"
)

// ListOrdersQueryHandler loads the order collection and applies the display
// filter. It reads through the repository port so both storage drivers serve
// the same query; nothing is cached between calls, so every invocation sees
// the latest persisted state.
type ListOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
// Requires a repository bound to the configured storage driver.
func NewListOrdersQueryHandler(orderRepo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle returns all orders passing the display filter, oldest first.
// Orders with no items or a non-positive effective amount are excluded even
// though they remain in the backing store.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if o.Displayable() {
			visible = append(visible, o)
		}
	}

	return visible, nil
}
