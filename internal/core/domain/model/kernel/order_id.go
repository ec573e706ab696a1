package kernel

import (
	"strconv"
	"sync"
	"time"

	"campuseats/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// OrderID is a value object that identifies an order. Identifiers are derived
// from the creation time in milliseconds, matching the external contract that
// order ids are opaque, roughly monotonic decimal strings.
//
// The zero value of OrderID is invalid and must be constructed using NewOrderID
// or OrderIDFromString.
//
// OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value string
}

var (
	orderIDMu   sync.Mutex
	lastOrderID int64
)

// NewOrderID generates a new identifier from the current wall clock.
// Generation is strictly increasing within the process: two orders created in
// the same millisecond still get distinct ids.
func NewOrderID() OrderID {
	orderIDMu.Lock()
	defer orderIDMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastOrderID {
		now = lastOrderID + 1
	}
	lastOrderID = now

	return OrderID{value: strconv.FormatInt(now, 10)}
}

// OrderIDFromString reconstructs an OrderID from its string representation.
// The id is treated as opaque: any non-empty string is accepted so that
// records written by earlier versions of the backend remain readable.
// Returns an error if the string is empty.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: s}, nil
}

// String returns the decimal string representation of the identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was constructed through a constructor.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
