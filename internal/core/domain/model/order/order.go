package order

import (
	"errors"
	"time"

	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/pkg/errs"
)

// DefaultCampus is assigned when the storefront omits the campus label.
const DefaultCampus = "Punjab"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPickupCodeMismatch is returned when a supplied pickup code does not
	// exactly match the code stored on the order. The transport layer maps it
	// to an authorization failure.
	ErrPickupCodeMismatch = errors.New("pickup code does not match")
)

// Item is one line of an order: a menu item reference with the name, unit
// price, and quantity the storefront sent at checkout. Items are carried as
// given; the server never recomputes amounts from them.
type Item struct {
	ItemID string
	Name   string
	Price  float64
	Qty    int
}

// Details carries the caller-supplied portion of an order payload.
// Amounts are accepted as given, items may be empty (the listing read path
// hides such records rather than the write path rejecting them), and a zero
// Status means Pending.
type Details struct {
	Items    []Item
	Total    float64
	Discount float64
	Payable  float64
	Outlet   string
	Campus   string
	Status   Status
}

// Order represents a placed food order. It is the aggregate root managing the
// order's identity, pickup code, and status progression.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and creation time
//   - Status is always a member of the fixed set
//   - The pickup code, once assigned, never changes
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// items is the ordered sequence of lines the storefront sent
	items []Item

	// total, discount and payable are amounts as supplied by the caller
	total    float64
	discount float64
	payable  float64

	// outlet and campus are free-text labels
	outlet string
	campus string

	// createdAt is the creation time, assigned by the service
	createdAt time.Time

	// pickupCode is the alternate key for vendor-side acceptance/pickup;
	// zero until assigned
	pickupCode kernel.PickupCode

	// status is the current state in the fixed progression
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order from a checkout payload. The service-owned
// fields are passed explicitly: identity, creation time, and the pickup code
// generated for the order (which may be zero to defer assignment).
//
// Defaults applied:
//   - Status defaults to Pending when details carry the zero Status
//   - Campus defaults to DefaultCampus when absent
//
// Items and amounts are stored as given. Returns an error if the id is
// invalid, the creation time is zero, or a supplied status is not a member of
// the fixed set.
func NewOrder(
	id kernel.OrderID,
	createdAt time.Time,
	pickupCode kernel.PickupCode,
	details Details,
) (*Order, error) {
	status := details.Status
	if status == Unknown {
		status = Pending
	}

	campus := details.Campus
	if campus == "" {
		campus = DefaultCampus
	}

	order := &Order{
		items:         details.Items,
		total:         details.Total,
		discount:      details.Discount,
		payable:       details.Payable,
		outlet:        details.Outlet,
		campus:        campus,
		pickupCode:    pickupCode,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// applies no defaults: the stored campus and status are taken as-is, and the
// status must already be a member of the fixed set.
func RestoreOrder(
	id kernel.OrderID,
	createdAt time.Time,
	pickupCode kernel.PickupCode,
	details Details,
) (*Order, error) {
	order := &Order{
		items:         details.Items,
		total:         details.Total,
		discount:      details.Discount,
		payable:       details.Payable,
		outlet:        details.Outlet,
		campus:        details.Campus,
		pickupCode:    pickupCode,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedAt(createdAt),
		order.setStatus(details.Status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence to
// prevent bypassing validation by direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Items returns the order lines in the sequence the storefront sent them.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the caller-supplied order total.
func (o *Order) Total() float64 {
	return o.total
}

// Discount returns the caller-supplied discount amount.
func (o *Order) Discount() float64 {
	return o.discount
}

// Payable returns the caller-supplied payable amount.
func (o *Order) Payable() float64 {
	return o.payable
}

// Amount returns the effective amount of the order: payable when positive,
// otherwise total. The listing filter and consumers use this as the order's
// displayed value.
func (o *Order) Amount() float64 {
	if o.payable > 0 {
		return o.payable
	}
	return o.total
}

// Outlet returns the outlet label.
func (o *Order) Outlet() string {
	return o.outlet
}

// Campus returns the campus label.
func (o *Order) Campus() string {
	return o.campus
}

// CreatedAt returns the creation time of the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickupCode returns the order's pickup code; zero when none is assigned yet.
func (o *Order) PickupCode() kernel.PickupCode {
	return o.pickupCode
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Accept sets the status to Accepted unconditionally. This is the id-based
// acceptance path: it can regress an order that is already further along.
func (o *Order) Accept() {
	o.status = Accepted
}

// AcceptForward moves the order to Accepted only when its current position in
// the progression is earlier than Accepted; otherwise the status is left
// unchanged. This is the single monotonic transition in the system, used by
// code-based acceptance. Returns whether the status changed.
func (o *Order) AcceptForward() bool {
	if !o.status.ComesBefore(Accepted) {
		return false
	}
	o.status = Accepted
	return true
}

// ChangeStatus overwrites the status with newStatus.
// Returns an error if newStatus is not a member of the fixed set; no
// monotonicity check is applied, so arbitrary jumps (including backward ones)
// are allowed.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Pickup marks the order as Picked after verifying the supplied code exactly
// matches the stored pickup code. Returns ErrPickupCodeMismatch otherwise.
// Picking up an already-picked order succeeds again with no change; there is
// deliberately no double-pickup guard.
func (o *Order) Pickup(suppliedCode string) error {
	if !o.pickupCode.Matches(suppliedCode) {
		return ErrPickupCodeMismatch
	}
	o.status = Picked
	return nil
}

// EnsurePickupCode assigns candidate as the order's pickup code if none is
// assigned yet. Returns true when the code was assigned, false when the order
// already had one (the existing code is never replaced).
func (o *Order) EnsurePickupCode(candidate kernel.PickupCode) bool {
	if !o.pickupCode.IsZero() {
		return false
	}
	o.pickupCode = candidate
	return true
}

// Displayable reports whether the order passes the listing filter: a non-empty
// id, at least one item, and a positive effective amount. The filter hides
// malformed or zero-value records from the storefront's order view; it is not
// a validation gate on write.
func (o *Order) Displayable() bool {
	return o.id.Validate() == nil && len(o.items) > 0 && o.Amount() > 0
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
