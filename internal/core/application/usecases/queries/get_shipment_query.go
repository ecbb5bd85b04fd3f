package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves one shipment with its piece placements by
// barcode.
//
// Example:
//
//	barcode, _ := kernel.BarcodeFromString("WH2603011234")
//	query, err := NewGetShipmentQuery(barcode)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetShipmentQueryHandler(db)
//	shipment, err := handler.Handle(ctx, query)
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	barcode kernel.Barcode

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for the shipment with the given
// barcode.
func NewGetShipmentQuery(barcode kernel.Barcode) (GetShipmentQuery, error) {
	shipmentQuery := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := shipmentQuery.setBarcode(barcode); err != nil {
		return GetShipmentQuery{}, err
	}

	return shipmentQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// Barcode returns the barcode being looked up.
func (q GetShipmentQuery) Barcode() kernel.Barcode {
	return q.barcode
}

func (q *GetShipmentQuery) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}

	q.barcode = barcode
	return nil
}

// GetShipmentQueryResponse represents one shipment in the read model,
// including its per-piece placements.
type GetShipmentQueryResponse struct {
	ID             kernel.UUID
	Barcode        string
	Shipper        string
	Consignee      string
	WeightKg       float64
	PieceCount     int
	PrimaryRack    string
	Status         string
	IntakeAt       time.Time
	ReleasedAt     *time.Time
	Notes          string
	TotalCharges   *float64
	PieceLocations map[int]PieceLocationResponse
}

// PieceLocationResponse represents one placed piece in the read model.
type PieceLocationResponse struct {
	RackID     string
	AssignedAt time.Time
}
