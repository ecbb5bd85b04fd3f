package commands

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/core/domain/model/assignment"
	"warehouse/internal/core/domain/model/rack"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrNoPendingAssignment is returned when a rack is scanned while the
	// operator has no open session. No slot state is touched.
	ErrNoPendingAssignment = errors.New("no pending assignment for operator")

	// ErrRackOccupied is returned when the target rack already holds a
	// different shipment. The operator's pending assignment survives so the
	// next rack scan can retry elsewhere.
	ErrRackOccupied = errors.New("rack is occupied by another shipment")
)

// ScanRackCommandHandler commits an operator's pending assignment into the
// scanned rack.
//
// The commit runs in one transaction: the shipment is re-loaded (it may have
// been released since the piece scan), the rack's occupancy is checked, and
// every pending ordinal plus the primary rack is written in a single
// aggregate update. The write is all-or-nothing. The session is cleared only
// after the transaction commits; any failure preserves it.
//
// Example:
//
//	handler := NewScanRackCommandHandler(uowFactory, sessions, rackMap)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingAssignment):
//	    // rack scanned first, operator must scan a piece
//	case errors.Is(err, ErrRackOccupied):
//	    // pick another rack, session survives
//	case err != nil:
//	    // commit failure, session survives
//	default:
//	    // pieces placed, operator back to idle
//	}
type ScanRackCommandHandler struct {
	uowFactory ShipmentUoWFactory
	sessions   *assignment.SessionStore
	rackMap    *rack.Map
}

// NewScanRackCommandHandler creates a handler for rack scans. Requires a
// ShipmentUoWFactory for the transactional commit, the shared SessionStore,
// and the warehouse rack map for slot existence checks.
func NewScanRackCommandHandler(
	uowFactory ShipmentUoWFactory,
	sessions *assignment.SessionStore,
	rackMap *rack.Map,
) ScanRackCommandHandler {
	return ScanRackCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		rackMap:    rackMap,
	}
}

// Handle processes the rack scan.
//
// Returns ErrNoPendingAssignment when the operator has no open session,
// errs.ErrObjectNotFound when the rack is not part of the configured map,
// ErrRackOccupied when a different shipment already holds the rack, and
// shipment.ErrShipmentNotAssignable when the shipment was released or
// cancelled since the piece scan. The session survives rack-side failures
// and is cleared on success or when the shipment itself is no longer
// assignable.
func (h ScanRackCommandHandler) Handle(ctx context.Context, cmd ScanRackCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now()

	pending, ok := h.sessions.Get(cmd.OperatorID(), now)
	if !ok {
		return ErrNoPendingAssignment
	}

	if _, ok = h.rackMap.SlotByID(cmd.RackID()); !ok {
		return errs.NewObjectNotFoundError("rackId", cmd.RackID())
	}

	err := h.commit(ctx, cmd, pending, now)
	if err == nil || errors.Is(err, shipment.ErrShipmentNotAssignable) {
		// A shipment that got released or cancelled mid-session can never
		// be committed, so the stale session ends here too.
		h.sessions.Clear(cmd.OperatorID())
	}

	return err
}

// commit runs the transactional part of the rack scan.
func (h ScanRackCommandHandler) commit(
	ctx context.Context,
	cmd ScanRackCommand,
	pending assignment.PendingAssignment,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	shp, err := shipmentRepo.Get(ctx, pending.ShipmentID())
	if err != nil {
		return err
	}

	if err = shp.ValidateAssignable(); err != nil {
		return err
	}

	occupant, err := shipmentRepo.FindActiveOccupant(ctx, cmd.RackID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if occupant != nil && !occupant.ID().IsEqual(shp.ID()) {
		return ErrRackOccupied
	}

	if err = shp.AssignPieces(cmd.RackID(), pending.PieceOrdinals(), cmd.OperatorID(), now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, shp); err != nil {
		// A concurrent commit can win the rack between the occupancy check
		// and the write; the unique constraint turns that race into a
		// conflict here.
		if errors.Is(err, ports.ErrRackConflict) {
			return ErrRackOccupied
		}
		return err
	}

	return uow.Commit(ctx)
}
