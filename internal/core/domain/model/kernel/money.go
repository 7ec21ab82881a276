package kernel

import (
	"fmt"

	"quickdish/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created through
// one of the constructor functions. Prices and totals must never be computed from
// zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or ZeroMoney")

// Money is a value object for monetary amounts with exact decimal semantics.
// It wraps github.com/shopspring/decimal so that menu prices, option extra
// prices, and order totals accumulate without floating-point rounding.
//
// Money is immutable; arithmetic returns new values. Negative amounts are
// rejected at construction, which makes price accumulation monotonic.
//
// Example usage:
//
//	base, _ := kernel.MoneyFromString("8.00")
//	extra, _ := kernel.MoneyFromString("1.50")
//	total := base.Add(extra)
//	fmt.Println(total.String()) // "9.5"
type Money struct {
	amount decimal.Decimal
	guard  ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount, guard: NewConstructorGuard()}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "8.00" or "0.75". Returns an error for malformed or negative input.
// This is the constructor used when reconstructing prices from persistence.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money value of zero, the identity for Add.
// Used as the starting point for price accumulation.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: NewConstructorGuard()}
}

// Add returns the exact sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: NewConstructorGuard()}
}

// Amount returns the underlying decimal value.
// Provided for persistence adapters; domain code should prefer Add/IsEqual.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// IsEqual compares two Money values numerically, so "1.50" equals "1.5".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
