package shipment

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

// ErrPieceLocationIsNotConstructed indicates that a PieceLocation was not
// created through NewPieceLocation.
var ErrPieceLocationIsNotConstructed = errors.New(
	"PieceLocation must be created via NewPieceLocation constructor")

// PieceLocation records where one piece of a shipment was placed: the rack it
// went into, when, and which operator committed the scan. Entries live in the
// shipment's piece ordinal -> location map and are overwritten, never
// duplicated, when the same ordinal is committed again.
//
// PieceLocation is an immutable value object.
type PieceLocation struct {
	rackID     kernel.RackID
	assignedAt time.Time
	operator   kernel.UUID

	guard guard.ConstructorGuard
}

// NewPieceLocation creates a location record for a committed piece placement.
func NewPieceLocation(rackID kernel.RackID, assignedAt time.Time, operator kernel.UUID) (PieceLocation, error) {
	if err := errors.Join(rackID.Validate(), operator.Validate()); err != nil {
		return PieceLocation{}, err
	}

	return PieceLocation{
		rackID:     rackID,
		assignedAt: assignedAt,
		operator:   operator,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RackID returns the rack the piece was placed into.
func (p PieceLocation) RackID() kernel.RackID {
	return p.rackID
}

// AssignedAt returns when the placement was committed.
func (p PieceLocation) AssignedAt() time.Time {
	return p.assignedAt
}

// Operator returns the identifier of the operator who committed the scan.
func (p PieceLocation) Operator() kernel.UUID {
	return p.operator
}

// Validate ensures the location was created through NewPieceLocation.
func (p PieceLocation) Validate() error {
	return p.guard.Validate(ErrPieceLocationIsNotConstructed)
}
