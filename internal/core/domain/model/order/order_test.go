package order_test

import (
	"testing"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pizzaDetails() order.Details {
	return order.Details{
		Items: []order.Item{
			{ItemID: "41", Name: "Pizza", Price: 200, Qty: 1},
		},
		Total:   200,
		Payable: 200,
		Outlet:  "Snackers",
	}
}

func newTestOrder(t *testing.T, details order.Details) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewOrderID(), time.Now(), kernel.GeneratePickupCode(), details)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("assigns_service_owned_fields_and_defaults", func(t *testing.T) {
		id := kernel.NewOrderID()
		createdAt := time.Now()
		code := kernel.GeneratePickupCode()

		o, err := order.NewOrder(id, createdAt, code, pizzaDetails())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.True(t, o.PickupCode().IsEqual(code))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.DefaultCampus, o.Campus())
		assert.Equal(t, "Snackers", o.Outlet())
		assert.InEpsilon(t, 200.0, o.Payable(), 1e-9)
	})

	t.Run("keeps_supplied_campus_and_status", func(t *testing.T) {
		details := pizzaDetails()
		details.Campus = "Himachal"
		details.Status = order.Accepted

		o := newTestOrder(t, details)

		assert.Equal(t, "Himachal", o.Campus())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("accepts_empty_items_and_zero_amounts", func(t *testing.T) {
		// The write path applies no content validation; only the listing
		// filter hides such records.
		o := newTestOrder(t, order.Details{})

		assert.Empty(t, o.Items())
		assert.False(t, o.Displayable())
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.OrderID{}, time.Now(), kernel.GeneratePickupCode(), pizzaDetails())

		require.Error(t, err)
	})

	t.Run("rejects_zero_creation_time", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewOrderID(), time.Time{}, kernel.GeneratePickupCode(), pizzaDetails())

		require.Error(t, err)
	})

	t.Run("rejects_status_outside_the_fixed_set", func(t *testing.T) {
		details := pizzaDetails()
		details.Status = order.Status(42)

		_, err := order.NewOrder(
			kernel.NewOrderID(), time.Now(), kernel.GeneratePickupCode(), details)

		require.Error(t, err)
	})

	t.Run("allows_deferred_pickup_code", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewOrderID(), time.Now(), kernel.PickupCode{}, pizzaDetails())

		require.NoError(t, err)
		assert.True(t, o.PickupCode().IsZero())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("takes_stored_values_as_is", func(t *testing.T) {
		details := pizzaDetails()
		details.Campus = ""
		details.Status = order.Ready

		o, err := order.RestoreOrder(
			kernel.NewOrderID(), time.Now(), kernel.GeneratePickupCode(), details)

		require.NoError(t, err)
		assert.Empty(t, o.Campus(), "restore should not re-apply the campus default")
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("rejects_invalid_stored_status", func(t *testing.T) {
		details := pizzaDetails()
		details.Status = order.Unknown

		_, err := order.RestoreOrder(
			kernel.NewOrderID(), time.Now(), kernel.GeneratePickupCode(), details)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_rejected", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("accepts_pending_order", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())

		o.Accept()

		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("regresses_further_along_order", func(t *testing.T) {
		// Id-based accept has no monotonicity guard.
		o := newTestOrder(t, pizzaDetails())
		require.NoError(t, o.ChangeStatus(order.Ready))

		o.Accept()

		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_AcceptForward(t *testing.T) {
	t.Run("advances_pending_order", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())

		changed := o.AcceptForward()

		assert.True(t, changed)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("leaves_order_at_accepted_unchanged", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())
		o.Accept()

		changed := o.AcceptForward()

		assert.False(t, changed)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("leaves_order_past_accepted_unchanged", func(t *testing.T) {
		for _, s := range []order.Status{order.Preparing, order.Ready, order.Picked} {
			o := newTestOrder(t, pizzaDetails())
			require.NoError(t, o.ChangeStatus(s))

			changed := o.AcceptForward()

			assert.False(t, changed)
			assert.Equal(t, s, o.Status(), "status %s should not regress", s)
		}
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("overwrites_with_any_member_of_the_set", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, order.Ready, o.Status())

		// Backward jumps are allowed on this path.
		require.NoError(t, o.ChangeStatus(order.Pending))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_status_outside_the_set_and_keeps_order_unmodified", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())
		require.NoError(t, o.ChangeStatus(order.Preparing))

		err := o.ChangeStatus(order.Status(7))

		require.Error(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_Pickup(t *testing.T) {
	t.Run("succeeds_with_exact_code", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())

		err := o.Pickup(o.PickupCode().String())

		require.NoError(t, err)
		assert.Equal(t, order.Picked, o.Status())
	})

	t.Run("rejects_mismatched_code", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())

		err := o.Pickup("WRONG1")

		require.ErrorIs(t, err, order.ErrPickupCodeMismatch)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_any_code_when_none_assigned", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewOrderID(), time.Now(), kernel.PickupCode{}, pizzaDetails())
		require.NoError(t, err)

		require.ErrorIs(t, o.Pickup("ABC234"), order.ErrPickupCodeMismatch)
	})

	t.Run("double_pickup_is_idempotent", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())
		code := o.PickupCode().String()

		require.NoError(t, o.Pickup(code))
		require.NoError(t, o.Pickup(code))

		assert.Equal(t, order.Picked, o.Status())
	})
}

func TestOrder_EnsurePickupCode(t *testing.T) {
	t.Run("assigns_when_missing", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewOrderID(), time.Now(), kernel.PickupCode{}, pizzaDetails())
		require.NoError(t, err)
		candidate := kernel.GeneratePickupCode()

		assigned := o.EnsurePickupCode(candidate)

		assert.True(t, assigned)
		assert.True(t, o.PickupCode().IsEqual(candidate))
	})

	t.Run("never_replaces_existing_code", func(t *testing.T) {
		o := newTestOrder(t, pizzaDetails())
		existing := o.PickupCode()

		assigned := o.EnsurePickupCode(kernel.GeneratePickupCode())

		assert.False(t, assigned)
		assert.True(t, o.PickupCode().IsEqual(existing))
	})
}

func TestOrder_Displayable(t *testing.T) {
	t.Run("well_formed_order_is_displayable", func(t *testing.T) {
		assert.True(t, newTestOrder(t, pizzaDetails()).Displayable())
	})

	t.Run("empty_items_hidden", func(t *testing.T) {
		details := pizzaDetails()
		details.Items = nil

		assert.False(t, newTestOrder(t, details).Displayable())
	})

	t.Run("non_positive_amount_hidden", func(t *testing.T) {
		details := pizzaDetails()
		details.Total = 0
		details.Payable = 0

		assert.False(t, newTestOrder(t, details).Displayable())
	})

	t.Run("falls_back_to_total_when_payable_unset", func(t *testing.T) {
		details := pizzaDetails()
		details.Payable = 0

		o := newTestOrder(t, details)

		assert.True(t, o.Displayable())
		assert.InEpsilon(t, 200.0, o.Amount(), 1e-9)
	})
}
