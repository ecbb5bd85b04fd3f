package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCancelAssignmentCommandIsNotConstructed = errors.New(
		"CancelAssignmentCommand must be created via NewCancelAssignmentCommand constructor",
	)
)

// CancelAssignmentCommand represents an operator abandoning the two-step
// placement workflow before the rack scan.
type CancelAssignmentCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelAssignmentCommand creates a command to end the operator's
// scanning session.
func NewCancelAssignmentCommand(operatorID kernel.UUID) (CancelAssignmentCommand, error) {
	cancelCommand := CancelAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setOperatorID(operatorID); err != nil {
		return CancelAssignmentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelAssignmentCommandIsNotConstructed if validation fails.
func (c CancelAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelAssignmentCommandIsNotConstructed)
}

// OperatorID returns the operator whose session is being cancelled.
func (c CancelAssignmentCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c *CancelAssignmentCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}
