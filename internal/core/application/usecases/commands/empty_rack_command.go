package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrEmptyRackCommandIsNotConstructed = errors.New(
		"EmptyRackCommand must be created via NewEmptyRackCommand constructor",
	)
)

// EmptyRackCommand represents an administrative correction that clears a
// rack: the occupying shipment loses its primary rack and every location
// entry pointing at it.
type EmptyRackCommand struct { //nolint:recvcheck //using for validation
	adminID kernel.UUID
	role    kernel.Role
	rackID  kernel.RackID

	guard guard.ConstructorGuard
}

// NewEmptyRackCommand creates a command to clear the given rack. The
// caller's role is captured here and enforced by the handler.
func NewEmptyRackCommand(adminID kernel.UUID, role kernel.Role, rackID kernel.RackID) (EmptyRackCommand, error) {
	emptyCommand := EmptyRackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		emptyCommand.setAdminID(adminID),
		emptyCommand.setRole(role),
		emptyCommand.setRackID(rackID),
	); err != nil {
		return EmptyRackCommand{}, err
	}

	return emptyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEmptyRackCommandIsNotConstructed if validation fails.
func (c EmptyRackCommand) Validate() error {
	return c.guard.Validate(ErrEmptyRackCommandIsNotConstructed)
}

// AdminID returns the acting administrator.
func (c EmptyRackCommand) AdminID() kernel.UUID {
	return c.adminID
}

// Role returns the caller's role.
func (c EmptyRackCommand) Role() kernel.Role {
	return c.role
}

// RackID returns the rack to clear.
func (c EmptyRackCommand) RackID() kernel.RackID {
	return c.rackID
}

func (c *EmptyRackCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *EmptyRackCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *EmptyRackCommand) setRackID(rackID kernel.RackID) error {
	if err := rackID.Validate(); err != nil {
		return err
	}

	c.rackID = rackID
	return nil
}
