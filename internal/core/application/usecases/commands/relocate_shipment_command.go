package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRelocateShipmentCommandIsNotConstructed = errors.New(
		"RelocateShipmentCommand must be created via NewRelocateShipmentCommand constructor",
	)
)

// RelocateShipmentCommand represents an administrative correction that moves
// every placed piece of a shipment to a different rack, bypassing the
// two-step scan workflow.
type RelocateShipmentCommand struct { //nolint:recvcheck //using for validation
	adminID kernel.UUID
	role    kernel.Role
	barcode kernel.Barcode
	rackID  kernel.RackID

	guard guard.ConstructorGuard
}

// NewRelocateShipmentCommand creates a command to move a shipment's pieces
// to the given rack. The caller's role is captured here and enforced by the
// handler.
func NewRelocateShipmentCommand(
	adminID kernel.UUID,
	role kernel.Role,
	barcode kernel.Barcode,
	rackID kernel.RackID,
) (RelocateShipmentCommand, error) {
	relocateCommand := RelocateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		relocateCommand.setAdminID(adminID),
		relocateCommand.setRole(role),
		relocateCommand.setBarcode(barcode),
		relocateCommand.setRackID(rackID),
	); err != nil {
		return RelocateShipmentCommand{}, err
	}

	return relocateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRelocateShipmentCommandIsNotConstructed if validation fails.
func (c RelocateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRelocateShipmentCommandIsNotConstructed)
}

// AdminID returns the acting administrator.
func (c RelocateShipmentCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Role returns the caller's role.
func (c RelocateShipmentCommand) Role() kernel.Role {
	return c.role
}

// Barcode returns the barcode of the shipment to move.
func (c RelocateShipmentCommand) Barcode() kernel.Barcode {
	return c.barcode
}

// RackID returns the destination rack.
func (c RelocateShipmentCommand) RackID() kernel.RackID {
	return c.rackID
}

func (c *RelocateShipmentCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *RelocateShipmentCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RelocateShipmentCommand) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}

	c.barcode = barcode
	return nil
}

func (c *RelocateShipmentCommand) setRackID(rackID kernel.RackID) error {
	if err := rackID.Validate(); err != nil {
		return err
	}

	c.rackID = rackID
	return nil
}
