package http

import (
	"time"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"
)

// CreateOrderRequest is the checkout payload the storefront posts. Amounts
// are taken as given; status and campus are optional and default server-side.
type CreateOrderRequest struct {
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	Discount float64     `json:"discount"`
	Payable  float64     `json:"payable"`
	Outlet   string      `json:"outlet"`
	Campus   string      `json:"campus"`
	Status   string      `json:"status"`
}

// CodeRequest carries a pickup code supplied by the vendor dashboard.
type CodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// StatusRequest carries a status label for direct status updates.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItem is one order line on the wire.
type OrderItem struct {
	ItemID string  `json:"itemId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

// OrderResponse is the full order representation returned by every endpoint
// that echoes an order back.
type OrderResponse struct {
	ID         string      `json:"id"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Discount   float64     `json:"discount"`
	Payable    float64     `json:"payable"`
	Outlet     string      `json:"outlet"`
	Campus     string      `json:"campus"`
	Timestamp  time.Time   `json:"timestamp"`
	PickupCode string      `json:"pickupCode,omitempty"`
	Status     string      `json:"status"`
}

// ListOrdersResponse wraps the displayable orders for the storefront's
// order-history view.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// MutationResponse wraps a mutated order in the success envelope the
// storefront expects.
type MutationResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// PurgeResponse reports how many orders a purge removed.
type PurgeResponse struct {
	Success bool `json:"success"`
	Removed int  `json:"removed"`
}

// PickupCodeResponse is returned by the pickup-code endpoint.
type PickupCodeResponse struct {
	ID         string `json:"id"`
	PickupCode string `json:"pickupCode"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toDetails converts the checkout payload into domain details.
// Returns an error if a supplied status label is not a member of the fixed
// set; an absent status stays zero so the domain applies its default.
func (r CreateOrderRequest) toDetails() (order.Details, error) {
	status := order.Unknown
	if r.Status != "" {
		parsed, err := order.StatusFromString(r.Status)
		if err != nil {
			return order.Details{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		status = parsed
	}

	items := make([]order.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, order.Item{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Qty:    it.Qty,
		})
	}

	return order.Details{
		Items:    items,
		Total:    r.Total,
		Discount: r.Discount,
		Payable:  r.Payable,
		Outlet:   r.Outlet,
		Campus:   r.Campus,
		Status:   status,
	}, nil
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, it := range aggregate.Items() {
		items = append(items, OrderItem{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Qty:    it.Qty,
		})
	}

	return OrderResponse{
		ID:         aggregate.ID().String(),
		Items:      items,
		Total:      aggregate.Total(),
		Discount:   aggregate.Discount(),
		Payable:    aggregate.Payable(),
		Outlet:     aggregate.Outlet(),
		Campus:     aggregate.Campus(),
		Timestamp:  aggregate.CreatedAt(),
		PickupCode: aggregate.PickupCode().String(),
		Status:     aggregate.Status().String(),
	}
}

func toMutationResponse(aggregate *order.Order) MutationResponse {
	return MutationResponse{
		Success: true,
		Order:   toOrderResponse(aggregate),
	}
}
