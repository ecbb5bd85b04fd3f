package kernel

import (
	"fmt"
	"math"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is a shipment weight in kilograms. It must be a positive, finite
// decimal. Weight is an immutable value object; the zero value is invalid.
type Weight struct {
	kilograms float64

	guard guard.ConstructorGuard
}

// NewWeight creates a weight from a kilogram value. The value must be finite
// and strictly greater than zero.
func NewWeight(kilograms float64) (Weight, error) {
	if math.IsNaN(kilograms) || math.IsInf(kilograms, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not a finite number", kilograms),
		)
	}

	if kilograms <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", kilograms),
		)
	}

	return Weight{
		kilograms: kilograms,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Kilograms returns the weight as a decimal kilogram value.
func (w Weight) Kilograms() float64 {
	return w.kilograms
}

// String formats the weight with two decimal places, e.g. "12.50 kg".
func (w Weight) String() string {
	return fmt.Sprintf("%.2f kg", w.kilograms)
}

// Validate checks that the weight was created through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
