package commands

import (
	"context"

	"warehouse/internal/core/domain/model/rack"
	"warehouse/internal/pkg/errs"
)

// EmptyRackCommandHandler clears a rack by wiping the occupying shipment's
// placements. Admin only. The rack map view needs no separate invalidation:
// slot statuses are recomputed from shipment state on every read.
type EmptyRackCommandHandler struct {
	uowFactory ShipmentUoWFactory
	rackMap    *rack.Map
}

// NewEmptyRackCommandHandler creates a handler for administrative rack
// clearing.
func NewEmptyRackCommandHandler(uowFactory ShipmentUoWFactory, rackMap *rack.Map) EmptyRackCommandHandler {
	return EmptyRackCommandHandler{
		uowFactory: uowFactory,
		rackMap:    rackMap,
	}
}

// Handle processes the rack clearing.
//
// Returns errs.ErrPermissionDenied for non-admin callers and
// errs.ErrObjectNotFound when the rack is unknown or already empty.
func (h EmptyRackCommandHandler) Handle(ctx context.Context, cmd EmptyRackCommand) error {
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

	occupant, err := shipmentRepo.FindActiveOccupant(ctx, cmd.RackID())
	if err != nil {
		return err
	}

	if err = occupant.ClearLocations(); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, occupant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
