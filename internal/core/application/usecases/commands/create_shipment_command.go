package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a shipment at
// intake. The barcode is not part of the command: the handler generates it
// and retries on collision.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("Acme Logistics", "Jane Smith", 12.5, 3, "fragile")
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	barcode, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to register shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s registered", barcode)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipper    string
	consignee  string
	weight     kernel.Weight
	pieceCount int
	notes      string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that shipper and consignee are not empty, weight is a positive
// finite number of kilograms, and the piece count is within the allowed
// range. Returns an error if any validation fails.
func NewCreateShipmentCommand(
	shipper string,
	consignee string,
	weightKg float64,
	pieceCount int,
	notes string,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipper(shipper),
		shipmentCommand.setConsignee(consignee),
		shipmentCommand.setWeight(weightKg),
		shipmentCommand.setPieceCount(pieceCount),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Shipper returns the sending party.
func (c CreateShipmentCommand) Shipper() string {
	return c.shipper
}

// Consignee returns the receiving party.
func (c CreateShipmentCommand) Consignee() string {
	return c.consignee
}

// Weight returns the shipment weight.
func (c CreateShipmentCommand) Weight() kernel.Weight {
	return c.weight
}

// PieceCount returns the declared number of pieces.
func (c CreateShipmentCommand) PieceCount() int {
	return c.pieceCount
}

// Notes returns the free-form intake notes.
func (c CreateShipmentCommand) Notes() string {
	return c.notes
}

func (c *CreateShipmentCommand) setShipper(shipper string) error {
	if shipper == "" {
		return errs.NewValueIsRequiredError("shipper")
	}

	c.shipper = shipper
	return nil
}

func (c *CreateShipmentCommand) setConsignee(consignee string) error {
	if consignee == "" {
		return errs.NewValueIsRequiredError("consignee")
	}

	c.consignee = consignee
	return nil
}

func (c *CreateShipmentCommand) setWeight(weightKg float64) error {
	weight, err := kernel.NewWeight(weightKg)
	if err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setPieceCount(pieceCount int) error {
	if pieceCount < kernel.PieceOrdinalMin || pieceCount > kernel.PieceOrdinalMax {
		return errs.NewValueIsOutOfRangeError(
			"pieceCount", pieceCount, kernel.PieceOrdinalMin, kernel.PieceOrdinalMax)
	}

	c.pieceCount = pieceCount
	return nil
}
