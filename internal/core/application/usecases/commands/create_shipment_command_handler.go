package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
)

// barcodeAttempts bounds how many generated barcodes the handler tries
// before giving up on a run of collisions.
const barcodeAttempts = 7

// ErrBarcodeAttemptsExhausted is returned when every generated barcode
// collided with an existing shipment. Distinct from validation errors so
// callers can surface it as a transient condition.
var ErrBarcodeAttemptsExhausted = errors.New("barcode generation attempts exhausted")

// CreateShipmentCommandHandler handles the business logic for shipment
// intake. Generates the barcode server-side and retries on collision, so two
// concurrent intakes on the same day can never share a label.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand("Acme Logistics", "Jane Smith", 12.5, 3, "")
//
//	barcode, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment intake failed: %w", err)
//	}
//	// barcode is printed on the piece labels
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment intake
// operations. Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment intake command and returns the generated
// barcode. The shipment is persisted in Confirmed status with no placements.
//
// A barcode collision aborts the attempt's transaction and triggers a fresh
// generation; after barcodeAttempts collisions the handler returns
// ErrBarcodeAttemptsExhausted.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (kernel.Barcode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Barcode{}, err
	}

	now := time.Now()

	for attempt := 0; attempt < barcodeAttempts; attempt++ {
		barcode := kernel.GenerateBarcode(now)

		err := h.persist(ctx, cmd, barcode, now)
		if errors.Is(err, ports.ErrBarcodeConflict) {
			continue
		}
		if err != nil {
			return kernel.Barcode{}, err
		}

		return barcode, nil
	}

	return kernel.Barcode{}, fmt.Errorf("%w: %d attempts", ErrBarcodeAttemptsExhausted, barcodeAttempts)
}

// persist runs one intake attempt in its own transaction. A unique-violation
// on the barcode aborts the transaction, so each attempt starts clean.
func (h CreateShipmentCommandHandler) persist(
	ctx context.Context,
	cmd CreateShipmentCommand,
	barcode kernel.Barcode,
	now time.Time,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shp, err := shipment.NewShipment(
		kernel.NewUUID(),
		barcode,
		cmd.Shipper(),
		cmd.Consignee(),
		cmd.Weight(),
		cmd.PieceCount(),
		now,
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
