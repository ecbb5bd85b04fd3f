package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrScanRackCommandIsNotConstructed = errors.New(
		"ScanRackCommand must be created via NewScanRackCommand constructor",
	)
)

// ScanRackCommand represents the second step of the two-step placement
// workflow: an operator scanning a rack label to commit the pending pieces.
//
// Example:
//
//	cmd, err := NewScanRackCommand(operatorID, "RACK_A_01_03")
//	if errors.Is(err, ErrInvalidScanFormat) {
//	    // not a rack label, pending assignment survives
//	    return
//	}
//
//	handler := NewScanRackCommandHandler(uowFactory, sessions, rackMap)
//	err = handler.Handle(ctx, cmd)
type ScanRackCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	rackID     kernel.RackID

	guard guard.ConstructorGuard
}

// NewScanRackCommand creates a command from a raw scanned code. The code
// must match the rack label grammar RACK_<ZONE>_<ROW>_<COL>; otherwise
// ErrInvalidScanFormat is returned and any pending assignment survives.
func NewScanRackCommand(operatorID kernel.UUID, code string) (ScanRackCommand, error) {
	scanCommand := ScanRackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scanCommand.setOperatorID(operatorID),
		scanCommand.setCode(code),
	); err != nil {
		return ScanRackCommand{}, err
	}

	return scanCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScanRackCommandIsNotConstructed if validation fails.
func (c ScanRackCommand) Validate() error {
	return c.guard.Validate(ErrScanRackCommandIsNotConstructed)
}

// OperatorID returns the scanning operator.
func (c ScanRackCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// RackID returns the parsed rack identity.
func (c ScanRackCommand) RackID() kernel.RackID {
	return c.rackID
}

func (c *ScanRackCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *ScanRackCommand) setCode(code string) error {
	rackID, err := kernel.RackIDFromScanCode(code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScanFormat, err)
	}

	c.rackID = rackID
	return nil
}
