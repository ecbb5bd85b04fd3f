package commands

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/rack"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// RelocateShipmentCommandHandler moves every placed piece of a shipment to
// another rack. Admin only: the warehouse uses it to fix misplacements
// without walking each piece through the scan workflow again.
//
// The destination rack must exist in the configured map and be either free
// or already held by the same shipment; the same occupancy rule the scan
// workflow enforces.
type RelocateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	rackMap    *rack.Map
}

// NewRelocateShipmentCommandHandler creates a handler for administrative
// relocations.
func NewRelocateShipmentCommandHandler(uowFactory ShipmentUoWFactory, rackMap *rack.Map) RelocateShipmentCommandHandler {
	return RelocateShipmentCommandHandler{
		uowFactory: uowFactory,
		rackMap:    rackMap,
	}
}

// Handle processes the relocation.
//
// Returns errs.ErrPermissionDenied for non-admin callers, ErrRackOccupied
// when the destination holds a different shipment, and
// shipment.ErrNoPiecesPlaced when the shipment has nothing to move.
func (h RelocateShipmentCommandHandler) Handle(ctx context.Context, cmd RelocateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Role().IsAdmin() {
		return errs.ErrPermissionDenied
	}

	if _, ok := h.rackMap.SlotByID(cmd.RackID()); !ok {
		return errs.NewObjectNotFoundError("rackId", cmd.RackID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	shp, err := shipmentRepo.FindByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return err
	}

	occupant, err := shipmentRepo.FindActiveOccupant(ctx, cmd.RackID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if occupant != nil && !occupant.ID().IsEqual(shp.ID()) {
		return ErrRackOccupied
	}

	if err = shp.Relocate(cmd.RackID(), cmd.AdminID(), time.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		if errors.Is(err, ports.ErrRackConflict) {
			return ErrRackOccupied
		}
		return err
	}

	return uow.Commit(ctx)
}
