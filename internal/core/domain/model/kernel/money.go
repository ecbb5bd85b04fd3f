package kernel

import (
	"fmt"
	"math"

	"warehouse/internal/pkg/errs"
)

// Money is a monetary amount held as integer cents. Storage charges are
// computed in floating point but rounded into Money exactly once per output,
// which avoids the repeated round(x*100)/100 drift of a float representation.
//
// The zero value is a valid amount of 0.00, so Money carries no constructor
// guard.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates an amount from integer cents.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromFloat converts a decimal currency value into cents, rounding
// half away from zero. Non-finite inputs are rejected.
func NewMoneyFromFloat(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not a finite number", value),
		)
	}

	return Money{cents: int64(math.Round(value * 100))}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount as a decimal currency value.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsZero reports whether the amount is exactly 0.00.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "15.00".
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
