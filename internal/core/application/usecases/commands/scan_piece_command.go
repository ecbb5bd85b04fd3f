package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrScanPieceCommandIsNotConstructed = errors.New(
		"ScanPieceCommand must be created via NewScanPieceCommand constructor",
	)

	// ErrInvalidScanFormat is returned when a scanned code does not match
	// any recognized label grammar.
	ErrInvalidScanFormat = errors.New("scan code format is invalid")
)

// ScanPieceCommand represents the first step of the two-step placement
// workflow: an operator scanning a piece label.
//
// Example:
//
//	cmd, err := NewScanPieceCommand(operatorID, "PIECE_WH2603011234_002")
//	if errors.Is(err, ErrInvalidScanFormat) {
//	    // not a piece label
//	    return
//	}
//
//	handler := NewScanPieceCommandHandler(uowFactory, sessions)
//	pending, err := handler.Handle(ctx, cmd)
//	// pending holds every ordinal of the shipment, awaiting a rack scan
type ScanPieceCommand struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID
	pieceCode  kernel.PieceCode

	guard guard.ConstructorGuard
}

// NewScanPieceCommand creates a command from a raw scanned code. The code
// must match the piece label grammar PIECE_<BARCODE>_<NNN>; otherwise
// ErrInvalidScanFormat is returned and no session state changes.
func NewScanPieceCommand(operatorID kernel.UUID, code string) (ScanPieceCommand, error) {
	scanCommand := ScanPieceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scanCommand.setOperatorID(operatorID),
		scanCommand.setCode(code),
	); err != nil {
		return ScanPieceCommand{}, err
	}

	return scanCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScanPieceCommandIsNotConstructed if validation fails.
func (c ScanPieceCommand) Validate() error {
	return c.guard.Validate(ErrScanPieceCommandIsNotConstructed)
}

// OperatorID returns the scanning operator.
func (c ScanPieceCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

// PieceCode returns the parsed piece label.
func (c ScanPieceCommand) PieceCode() kernel.PieceCode {
	return c.pieceCode
}

func (c *ScanPieceCommand) setOperatorID(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	c.operatorID = operatorID
	return nil
}

func (c *ScanPieceCommand) setCode(code string) error {
	pieceCode, err := kernel.ParsePieceCode(code)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScanFormat, err)
	}

	c.pieceCode = pieceCode
	return nil
}
