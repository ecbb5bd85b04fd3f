package assignment

import (
	"errors"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrPendingAssignmentIsNotConstructed indicates that a PendingAssignment was
// not created through NewPendingAssignment.
var ErrPendingAssignmentIsNotConstructed = errors.New(
	"PendingAssignment must be created via NewPendingAssignment constructor")

// PendingAssignment is the transient, in-memory state of one operator's
// two-step scan session: a piece scan has resolved a shipment and the session
// now awaits a rack scan to commit.
//
// The pending set always holds every piece ordinal of the shipment, not only
// the ordinal that was scanned: committing the rack places the whole
// shipment. The originally scanned ordinal is retained for display and audit.
//
// A PendingAssignment is created on a valid piece scan, and destroyed on
// successful rack commit, explicit cancel, or timeout. It never outlives the
// process and is never persisted.
type PendingAssignment struct {
	shipmentID     kernel.UUID
	barcode        kernel.Barcode
	pieceOrdinals  []int
	scannedOrdinal int
	operator       kernel.UUID
	startedAt      time.Time

	guard guard.ConstructorGuard
}

// NewPendingAssignment captures a scanning session for the given shipment.
// pieceOrdinals must be the shipment's complete ordinal set and must contain
// scannedOrdinal.
func NewPendingAssignment(
	shipmentID kernel.UUID,
	barcode kernel.Barcode,
	pieceOrdinals []int,
	scannedOrdinal int,
	operator kernel.UUID,
	startedAt time.Time,
) (PendingAssignment, error) {
	if err := errors.Join(shipmentID.Validate(), barcode.Validate(), operator.Validate()); err != nil {
		return PendingAssignment{}, err
	}

	if len(pieceOrdinals) == 0 {
		return PendingAssignment{}, errs.NewValueIsRequiredError("pieceOrdinals")
	}

	if !slices.Contains(pieceOrdinals, scannedOrdinal) {
		return PendingAssignment{}, errs.NewValueIsInvalidErrorWithCause(
			"scannedOrdinal",
			errors.New("scanned ordinal is not part of the pending piece set"),
		)
	}

	ordinals := make([]int, len(pieceOrdinals))
	copy(ordinals, pieceOrdinals)

	return PendingAssignment{
		shipmentID:     shipmentID,
		barcode:        barcode,
		pieceOrdinals:  ordinals,
		scannedOrdinal: scannedOrdinal,
		operator:       operator,
		startedAt:      startedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// ShipmentID returns the internal id of the shipment under assignment.
func (p PendingAssignment) ShipmentID() kernel.UUID {
	return p.shipmentID
}

// Barcode returns the barcode of the shipment under assignment.
func (p PendingAssignment) Barcode() kernel.Barcode {
	return p.barcode
}

// PieceOrdinals returns a copy of the complete pending piece set.
func (p PendingAssignment) PieceOrdinals() []int {
	out := make([]int, len(p.pieceOrdinals))
	copy(out, p.pieceOrdinals)
	return out
}

// ScannedOrdinal returns the ordinal whose scan opened the session.
func (p PendingAssignment) ScannedOrdinal() int {
	return p.scannedOrdinal
}

// Operator returns the operator driving the session.
func (p PendingAssignment) Operator() kernel.UUID {
	return p.operator
}

// StartedAt returns when the piece scan opened the session.
func (p PendingAssignment) StartedAt() time.Time {
	return p.startedAt
}

// IsExpired reports whether the session has outlived ttl as of now.
// A non-positive ttl disables expiry.
func (p PendingAssignment) IsExpired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(p.startedAt) > ttl
}

// Validate ensures the assignment was created through NewPendingAssignment.
func (p PendingAssignment) Validate() error {
	return p.guard.Validate(ErrPendingAssignmentIsNotConstructed)
}
