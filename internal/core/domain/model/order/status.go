package order

import (
	"fmt"

	"campuseats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order within the fixed
// progression:
//
//	Pending -> Accepted -> Preparing -> Ready -> Picked
//
// The progression is a total order; Position exposes an order's place in it so
// callers can implement monotonic (forward-only) transitions. Only the
// code-based accept operation uses that guard: direct status updates and
// id-based acceptance overwrite the status unconditionally.
//
// Status is a value object that validates membership in the fixed set and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Accepted indicates the vendor has accepted the order.
	Accepted

	// Preparing indicates the vendor is preparing the order.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// Picked indicates the order has been picked up. This is the final
	// position in the progression, though nothing forbids a direct status
	// update from moving an order out of it.
	Picked
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Preparing: "Preparing",
		Ready:     "Ready",
		Picked:    "Picked",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Preparing: "Preparing",
		Ready:     "Ready",
		Picked:    "Picked",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error if s names no member of the fixed set; parsing is
// case-sensitive, so "pending" is rejected the same as any unknown label.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not an allowed status", s))
}

// Validate checks if the Status value is a member of the fixed set.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Position returns the status's index in the fixed progression, with Pending
// at 0 and Picked at 4. Invalid statuses sort before Pending, so an
// unrecognized stored status never blocks a forward move.
func (s Status) Position() int {
	return int(s) - int(Pending)
}

// ComesBefore reports whether s sits strictly earlier than other in the
// progression. Used by the monotonic code-based accept guard.
func (s Status) ComesBefore(other Status) bool {
	return s.Position() < other.Position()
}
