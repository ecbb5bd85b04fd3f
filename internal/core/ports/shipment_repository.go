package ports

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

// ErrBarcodeConflict is returned by Add when another shipment already holds
// the same barcode.
var ErrBarcodeConflict = errors.New("barcode already in use")

// ErrRackConflict is returned by Add and Update when another confirmed
// shipment already holds the target primary rack. The storage layer enforces
// this with a unique constraint, so two concurrent placements into the same
// free rack cannot both commit.
var ErrRackConflict = errors.New("rack already held by another shipment")

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Implementations translate storage-level failures into domain
// errors: a not-found lookup yields errs.ObjectNotFoundError, a barcode
// collision on Add yields ErrBarcodeConflict, and a primary rack collision
// yields ErrRackConflict.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and its barcode unique among all shipments.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// FindByBarcode retrieves a shipment aggregate by its barcode.
	FindByBarcode(ctx context.Context, barcode kernel.Barcode) (*shipment.Shipment, error)

	// FindActiveOccupant retrieves the confirmed shipment whose primary rack
	// is rackID, if one exists. Used to detect slot conflicts before a piece
	// placement commits.
	FindActiveOccupant(ctx context.Context, rackID kernel.RackID) (*shipment.Shipment, error)

	// GetAllConfirmed retrieves every shipment still in Confirmed status.
	// Feeds the rack map projection and storage reports.
	GetAllConfirmed(ctx context.Context) ([]*shipment.Shipment, error)
}
