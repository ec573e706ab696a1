package guard_test

import (
	"errors"
	"testing"

	"campuseats/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type MenuItem struct {
		name  string
		price int
		guard guard.ConstructorGuard
	}

	var errMenuItemNotConstructed = errors.New("MenuItem must be created via NewMenuItem")

	newMenuItem := func(name string, price int) (MenuItem, error) {
		if name == "" {
			return MenuItem{}, errors.New("item name is required")
		}
		if price < 0 {
			return MenuItem{}, errors.New("price cannot be negative")
		}
		return MenuItem{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateMenuItem := func(m MenuItem) error {
		return m.guard.Validate(errMenuItemNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		item, err := newMenuItem("Masala Dosa", 90)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateMenuItem(item))
		assert.Equal(t, "Masala Dosa", item.name)
		assert.Equal(t, 90, item.price)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var item MenuItem // zero value

		// When
		err := validateMenuItem(item)

		// Then
		// Zero value MenuItem has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errMenuItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test empty name
		_, err := newMenuItem("", 90)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item name is required")

		// Test negative price
		_, err = newMenuItem("Masala Dosa", -90)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errOutletNotConstructed = errors.New("Outlet must be created via NewOutlet")

	// Define a guard-aware base type
	type guardedOutlet struct {
		guard guard.ConstructorGuard
	}

	newGuardedOutlet := func() guardedOutlet {
		return guardedOutlet{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedOutlet := func(g guardedOutlet) error {
		return g.guard.Validate(errOutletNotConstructed)
	}

	// Define the actual domain object
	type Outlet struct {
		guardedOutlet
		id     string
		name   string
		campus string
	}

	newOutlet := func(id, name, campus string) (Outlet, error) {
		if id == "" {
			return Outlet{}, errors.New("outlet ID is required")
		}
		if name == "" {
			return Outlet{}, errors.New("outlet name is required")
		}
		if campus == "" {
			return Outlet{}, errors.New("outlet campus is required")
		}
		return Outlet{
			guardedOutlet: newGuardedOutlet(),
			id:            id,
			name:          name,
			campus:        campus,
		}, nil
	}

	t.Run("valid_outlet_construction", func(t *testing.T) {
		// When
		outlet, err := newOutlet("41", "Snackers", "Punjab")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedOutlet(outlet.guardedOutlet))
		assert.Equal(t, "41", outlet.id)
		assert.Equal(t, "Snackers", outlet.name)
		assert.Equal(t, "Punjab", outlet.campus)
	})

	t.Run("zero_value_outlet_fails_validation", func(t *testing.T) {
		// Given
		var outlet Outlet // zero value

		// When
		err := validateGuardedOutlet(outlet.guardedOutlet)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errOutletNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder"),
		},
		{
			name:          "order_id_not_constructed_error",
			expectedError: errors.New("OrderID must be created via NewOrderID factory method"),
		},
		{
			name:          "pickup_code_not_constructed_error",
			expectedError: errors.New("PickupCode requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
