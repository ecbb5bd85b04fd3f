package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrReleaseShipmentCommandIsNotConstructed = errors.New(
		"ReleaseShipmentCommand must be created via NewReleaseShipmentCommand constructor",
	)
)

// ReleaseShipmentCommand represents handing a shipment over to its
// consignee. Release prices the accumulated storage, stamps the final
// charges, and freezes the shipment's placements.
//
// Example:
//
//	barcode, _ := kernel.BarcodeFromString("WH2603011234")
//	cmd, err := NewReleaseShipmentCommand(barcode)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewReleaseShipmentCommandHandler(uowFactory, logger)
//	charges, err := handler.Handle(ctx, cmd)
//	// charges.Total is the invoiced amount
type ReleaseShipmentCommand struct { //nolint:recvcheck //using for validation
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewReleaseShipmentCommand creates a command to release the shipment with
// the given barcode.
func NewReleaseShipmentCommand(barcode kernel.Barcode) (ReleaseShipmentCommand, error) {
	releaseCommand := ReleaseShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := releaseCommand.setBarcode(barcode); err != nil {
		return ReleaseShipmentCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseShipmentCommandIsNotConstructed if validation fails.
func (c ReleaseShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReleaseShipmentCommandIsNotConstructed)
}

// Barcode returns the barcode of the shipment to release.
func (c ReleaseShipmentCommand) Barcode() kernel.Barcode {
	return c.barcode
}

func (c *ReleaseShipmentCommand) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}

	c.barcode = barcode
	return nil
}
