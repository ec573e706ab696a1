// Package jsonfile persists orders as a single JSON snapshot file on local
// disk. It is the default storage driver for single-node deployments: every
// committed mutation rewrites the whole file, and a store-level mutex
// serializes writers so concurrent requests cannot lose updates.
package jsonfile

import (
	"fmt"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"
)

// orderDTO is the on-disk shape of one order. Field names follow the JSON the
// storefront exchanges with the API, so the snapshot file doubles as a
// human-readable export.
type orderDTO struct {
	ID         string    `json:"id"`
	Items      []itemDTO `json:"items"`
	Total      float64   `json:"total"`
	Discount   float64   `json:"discount"`
	Payable    float64   `json:"payable"`
	Outlet     string    `json:"outlet"`
	Campus     string    `json:"campus"`
	Timestamp  time.Time `json:"timestamp"`
	PickupCode string    `json:"pickupCode,omitempty"`
	Status     string    `json:"status"`
}

type itemDTO struct {
	ItemID string  `json:"itemId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}

// snapshotDTO is the top-level file structure.
type snapshotDTO struct {
	Orders []orderDTO `json:"orders"`
}

func fromDomain(aggregate *order.Order) orderDTO {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, it := range aggregate.Items() {
		items = append(items, itemDTO{
			ItemID: it.ItemID,
			Name:   it.Name,
			Price:  it.Price,
			Qty:    it.Qty,
		})
	}

	return orderDTO{
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

// toDomain restores a stored record into the aggregate. A record that fails to
// restore is snapshot corruption, not caller input, so the validation sentinels
// stay out of the returned chain and the failure reads as a storage error.
func toDomain(dto orderDTO) (*order.Order, error) {
	restored, err := restoreRecord(dto)
	if err != nil {
		return nil, fmt.Errorf("decode order record %q: %v", dto.ID, err)
	}
	return restored, nil
}

func restoreRecord(dto orderDTO) (*order.Order, error) {
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
