package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrBarcodeIsNotConstructed is returned when validating a zero-value Barcode.
// Barcodes must be created via GenerateBarcode or BarcodeFromString.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError(
	"barcode must be created via GenerateBarcode or BarcodeFromString")

// barcodePattern matches the intake label grammar: the WH prefix, a six digit
// yymmdd intake date and a four digit random suffix.
var barcodePattern = regexp.MustCompile(`^WH\d{6}\d{4}$`)

// Barcode is the human-facing shipment identifier of the form WHyymmddNNNN.
// It is assigned once at intake and never changes. Uniqueness is not a
// property of the value itself: the four digit suffix is random, so creators
// must check for collisions against the record store and regenerate on
// conflict.
//
// Barcode is an immutable value object; the zero value is invalid.
//
// Example:
//
//	barcode := kernel.GenerateBarcode(time.Now())
//	fmt.Println(barcode.String()) // e.g. "WH2608300417"
type Barcode struct {
	value string

	guard guard.ConstructorGuard
}

// GenerateBarcode produces a candidate barcode for a shipment taken in at the
// given time. The date part is deterministic; the four digit suffix is drawn
// at random, so the result must still be checked for uniqueness before use.
func GenerateBarcode(at time.Time) Barcode {
	return Barcode{
		value: fmt.Sprintf("WH%s%04d", at.Format("060102"), rand.IntN(10000)),
		guard: guard.NewConstructorGuard(),
	}
}

// BarcodeFromString parses and validates a barcode from its string form.
// Returns a ValueIsInvalidError if the string does not match the
// WHyymmddNNNN grammar.
func BarcodeFromString(s string) (Barcode, error) {
	if s == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}

	if !barcodePattern.MatchString(s) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause(
			"barcode",
			fmt.Errorf("%q does not match WHyymmddNNNN", s),
		)
	}

	return Barcode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the barcode text as printed on the intake label.
func (b Barcode) String() string {
	return b.value
}

// IsEqual compares two barcodes by value.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// Validate checks that the barcode was created through a constructor.
func (b Barcode) Validate() error {
	return b.guard.Validate(ErrBarcodeIsNotConstructed)
}
