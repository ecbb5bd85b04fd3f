// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The barcode carries a unique index so intake collisions surface as a
// constraint violation, and the piece placement map is stored as a single
// JSONB document so the whole placement set commits in one row write.
type ShipmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode           string    `gorm:"size:12;uniqueIndex"`
	Shipper           string
	Consignee         string
	WeightKg          float64
	PieceCount        int
	// Partial unique index: at most one confirmed (status = 1) shipment may
	// hold a rack at a time. NULL rack IDs are not constrained.
	PrimaryRackID     *string `gorm:"index:idx_shipments_active_rack,unique,where:status = 1"`
	Status            int     `gorm:"index"`
	IntakeAt          time.Time
	ReleasedAt        *time.Time
	Locations         []byte `gorm:"type:jsonb"`
	Notes             string
	TotalChargesCents *int64
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// locationDoc is one entry of the locations JSONB document, keyed by piece
// ordinal.
type locationDoc struct {
	RackID     string    `json:"rack_id"`
	AssignedAt time.Time `json:"assigned_at"`
	Operator   string    `json:"operator"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Serializes the piece placement map into the JSONB document.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	docs := make(map[string]locationDoc)
	for ordinal, location := range aggregate.Locations() {
		docs[strconv.Itoa(ordinal)] = locationDoc{
			RackID:     location.RackID().String(),
			AssignedAt: location.AssignedAt(),
			Operator:   location.Operator().String(),
		}
	}

	rawLocations, err := json.Marshal(docs)
	if err != nil {
		return ShipmentDTO{}, err
	}

	var primaryRack *string
	if rackID := aggregate.PrimaryRack(); rackID != nil {
		raw := rackID.String()
		primaryRack = &raw
	}

	var chargesCents *int64
	if charges := aggregate.TotalCharges(); charges != nil {
		raw := charges.Cents()
		chargesCents = &raw
	}

	return ShipmentDTO{
		ID:                aggregate.ID().Bytes(),
		Barcode:           aggregate.Barcode().String(),
		Shipper:           aggregate.Shipper(),
		Consignee:         aggregate.Consignee(),
		WeightKg:          aggregate.Weight().Kilograms(),
		PieceCount:        aggregate.PieceCount(),
		PrimaryRackID:     primaryRack,
		Status:            int(aggregate.Status()),
		IntakeAt:          aggregate.IntakeAt(),
		ReleasedAt:        aggregate.ReleasedAt(),
		Locations:         rawLocations,
		Notes:             aggregate.Notes(),
		TotalChargesCents: chargesCents,
	}, nil
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including placements using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	barcode, err := kernel.BarcodeFromString(dto.Barcode)
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(dto.WeightKg)
	if err != nil {
		return nil, err
	}

	var primaryRack *kernel.RackID
	if dto.PrimaryRackID != nil {
		rackID, rackErr := kernel.RackIDFromString(*dto.PrimaryRackID)
		if rackErr != nil {
			return nil, rackErr
		}
		primaryRack = &rackID
	}

	locations, err := locationsToDomain(dto.Locations)
	if err != nil {
		return nil, err
	}

	var totalCharges *kernel.Money
	if dto.TotalChargesCents != nil {
		money := kernel.NewMoneyFromCents(*dto.TotalChargesCents)
		totalCharges = &money
	}

	return shipment.RestoreShipment(
		id,
		barcode,
		dto.Shipper,
		dto.Consignee,
		weight,
		dto.PieceCount,
		primaryRack,
		shipment.Status(dto.Status),
		dto.IntakeAt,
		dto.ReleasedAt,
		locations,
		dto.Notes,
		totalCharges,
	)
}

// locationsToDomain deserializes the JSONB placement document.
func locationsToDomain(raw []byte) (map[int]shipment.PieceLocation, error) {
	locations := make(map[int]shipment.PieceLocation)
	if len(raw) == 0 {
		return locations, nil
	}

	docs := make(map[string]locationDoc)
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}

	for key, doc := range docs {
		ordinal, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}

		rackID, err := kernel.RackIDFromString(doc.RackID)
		if err != nil {
			return nil, err
		}

		operator, err := kernel.UUIDFromString(doc.Operator)
		if err != nil {
			return nil, err
		}

		location, err := shipment.NewPieceLocation(rackID, doc.AssignedAt, operator)
		if err != nil {
			return nil, err
		}

		locations[ordinal] = location
	}

	return locations, nil
}
