package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/assignment"
	"warehouse/internal/pkg/errs"
)

// ScanPieceCommandHandler resolves a scanned piece label to its shipment and
// opens a pending assignment for the operator.
//
// The pending assignment captures every piece ordinal of the shipment, not
// only the scanned one: the rack scan that follows places the whole
// shipment. A failed scan leaves the operator's session exactly as it was.
//
// Example:
//
//	handler := NewScanPieceCommandHandler(uowFactory, sessions)
//	pending, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown barcode, operator stays idle
//	case errors.Is(err, shipment.ErrShipmentNotAssignable):
//	    // released or cancelled shipment
//	case err != nil:
//	    // lookup failure
//	default:
//	    // operator is now awaiting a rack scan
//	}
type ScanPieceCommandHandler struct {
	uowFactory ShipmentUoWFactory
	sessions   *assignment.SessionStore
}

// NewScanPieceCommandHandler creates a handler for piece scans. Requires a
// ShipmentUoWFactory for the shipment lookup and the shared SessionStore.
func NewScanPieceCommandHandler(
	uowFactory ShipmentUoWFactory,
	sessions *assignment.SessionStore,
) ScanPieceCommandHandler {
	return ScanPieceCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle processes the piece scan and returns the opened pending assignment.
//
// Returns errs.ErrObjectNotFound for an unknown barcode,
// shipment.ErrShipmentNotAssignable for a released or cancelled shipment,
// and a ValueIsOutOfRangeError when the scanned ordinal exceeds the
// shipment's declared piece count. In every failure case the operator's
// session is left untouched.
func (h ScanPieceCommandHandler) Handle(ctx context.Context, cmd ScanPieceCommand) (assignment.PendingAssignment, error) {
	if err := cmd.Validate(); err != nil {
		return assignment.PendingAssignment{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return assignment.PendingAssignment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shp, err := uow.ShipmentRepository().FindByBarcode(ctx, cmd.PieceCode().Barcode())
	if err != nil {
		return assignment.PendingAssignment{}, err
	}

	if err = shp.ValidateAssignable(); err != nil {
		return assignment.PendingAssignment{}, err
	}

	ordinal := cmd.PieceCode().Ordinal()
	if ordinal > shp.PieceCount() {
		return assignment.PendingAssignment{}, errs.NewValueIsOutOfRangeError(
			"pieceOrdinal", ordinal, 1, shp.PieceCount())
	}

	pending, err := assignment.NewPendingAssignment(
		shp.ID(),
		shp.Barcode(),
		shp.PieceOrdinals(),
		ordinal,
		cmd.OperatorID(),
		time.Now(),
	)
	if err != nil {
		return assignment.PendingAssignment{}, err
	}

	if err = h.sessions.Put(pending); err != nil {
		return assignment.PendingAssignment{}, err
	}

	return pending, nil
}
