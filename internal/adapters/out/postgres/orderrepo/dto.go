// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The pickup code and status columns are indexed because the by-code lookups
// and the pending-orders job filter on them.
type OrderDTO struct {
	ID         string    `gorm:"primaryKey"`
	Items      []ItemDTO `gorm:"serializer:json"`
	Total      float64
	Discount   float64
	Payable    float64
	Outlet     string
	Campus     string
	Timestamp  time.Time
	PickupCode string `gorm:"index"`
	Status     string `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line as stored inside the serialized items column.
type ItemDTO struct {
	ItemID string  `json:"itemId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, it := range aggregate.Items() {
		items = append(items, ItemDTO{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Qty:    it.Qty,
		})
	}

	return OrderDTO{
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

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder, so stored state is taken as-is without re-applying defaults.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var code kernel.PickupCode
	if dto.PickupCode != "" {
		code, err = kernel.PickupCodeFromString(dto.PickupCode)
		if err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, order.Item{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Qty:    it.Qty,
		})
	}

	return order.RestoreOrder(id, dto.Timestamp, code, order.Details{
		Items:    items,
		Total:    dto.Total,
		Discount: dto.Discount,
		Payable:  dto.Payable,
		Outlet:   dto.Outlet,
		Campus:   dto.Campus,
		Status:   status,
	})
}
