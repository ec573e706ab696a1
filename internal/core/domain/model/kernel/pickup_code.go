package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"campuseats/internal/pkg/errs"
)

const (
	// PickupCodeLength is the number of symbols in a pickup code.
	PickupCodeLength = 6

	// PickupCodeAlphabet is the fixed 32-symbol alphabet codes are drawn from.
	// Visually ambiguous characters (0/O, 1/I) are excluded so codes stay easy
	// to read aloud and type.
	PickupCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ErrPickupCodeIsNotConstructed indicates that a PickupCode was not initialized
// through one of the constructor functions.
var ErrPickupCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"PickupCode must be created via GeneratePickupCode or PickupCodeFromString")

// PickupCode is a short human-enterable code identifying an order for
// vendor-side acceptance and pickup. It acts as an alternate key to the order
// id and never changes once assigned to an order.
//
// The zero value represents "no code assigned"; use IsZero to test for it.
type PickupCode struct {
	value string
}

// GeneratePickupCode produces a new code of PickupCodeLength symbols drawn
// uniformly at random from PickupCodeAlphabet. Collisions with existing codes
// are not checked here; callers that require uniqueness must verify against
// the store and regenerate.
func GeneratePickupCode() PickupCode {
	var b strings.Builder
	b.Grow(PickupCodeLength)
	for range PickupCodeLength {
		b.WriteByte(PickupCodeAlphabet[rand.IntN(len(PickupCodeAlphabet))])
	}
	return PickupCode{value: b.String()}
}

// PickupCodeFromString reconstructs a PickupCode from its string form.
// Codes read back from the store or supplied by clients are accepted verbatim;
// a supplied code that was never generated simply fails to match any order.
// Returns an error if the string is empty.
func PickupCodeFromString(s string) (PickupCode, error) {
	if s == "" {
		return PickupCode{}, errs.NewValueIsRequiredError("pickup code")
	}
	return PickupCode{value: s}, nil
}

// String returns the code text. The zero value renders as the empty string.
func (c PickupCode) String() string {
	return c.value
}

// IsZero reports whether no code has been assigned.
func (c PickupCode) IsZero() bool {
	return c.value == ""
}

// Matches reports whether the supplied text equals this code exactly.
// Comparison is case-sensitive; the zero value matches nothing.
func (c PickupCode) Matches(supplied string) bool {
	return !c.IsZero() && c.value == supplied
}

// IsEqual compares two pickup codes for equality.
func (c PickupCode) IsEqual(other PickupCode) bool {
	return c.value == other.value
}

// Validate checks that the PickupCode was constructed through a constructor.
// Returns ErrPickupCodeIsNotConstructed for the zero value.
func (c PickupCode) Validate() error {
	if c.IsZero() {
		return ErrPickupCodeIsNotConstructed
	}
	return nil
}

// CheckPickupCodeFormat reports an error unless s is exactly PickupCodeLength
// symbols from PickupCodeAlphabet. Used by tests and diagnostics; the live
// request path intentionally compares codes verbatim.
func CheckPickupCodeFormat(s string) error {
	if len(s) != PickupCodeLength {
		return errs.NewValueIsInvalidErrorWithCause("pickup code",
			fmt.Errorf("length %d, want %d", len(s), PickupCodeLength))
	}
	for i := range len(s) {
		if !strings.ContainsRune(PickupCodeAlphabet, rune(s[i])) {
			return errs.NewValueIsInvalidErrorWithCause("pickup code",
				fmt.Errorf("symbol %q is not in the code alphabet", s[i]))
		}
	}
	return nil
}
