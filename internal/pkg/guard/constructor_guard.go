// Package guard provides a defensive construction pattern for value objects
// and commands. Embedding a ConstructorGuard in a struct makes it possible to
// detect whether the struct was created through its designated constructor or
// left as a zero value, so invariants established by the constructor can be
// trusted everywhere else.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate when no specific error is provided. This ensures
// validation always fails with a meaningful message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the enclosing object was built through its
// constructor. The zero value is "not constructed" and fails Validate.
//
// Example usage:
//
//	type Barcode struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewBarcode(value string) (Barcode, error) {
//	    // ... validate value ...
//	    return Barcode{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b Barcode) Validate() error {
//	    return b.guard.Validate(ErrBarcodeIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the "constructed" state. Call it only
// from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was properly constructed.
// For zero-value guards it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
