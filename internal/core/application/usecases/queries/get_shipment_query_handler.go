package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"
)

// locationDoc mirrors one entry of the shipments.locations JSON column.
type locationDoc struct {
	RackID     string    `json:"rack_id"`
	AssignedAt time.Time `json:"assigned_at"`
	Operator   string    `json:"operator"`
}

// GetShipmentQueryHandler retrieves one shipment read model by barcode.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(db)
//	query, _ := NewGetShipmentQuery(barcode)
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown barcode
//	    return
//	}
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for shipment lookup queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no
// shipment carries the barcode.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			barcode,
			shipper,
			consignee,
			weight_kg,
			piece_count,
			primary_rack_id,
			status,
			intake_at,
			released_at,
			locations,
			notes,
			total_charges_cents
		FROM shipments
		WHERE barcode = ?
	`, query.Barcode().String()).Row()

	var (
		id           uuid.UUID
		response     GetShipmentQueryResponse
		primaryRack  sql.NullString
		status       int
		releasedAt   sql.NullTime
		rawLocations []byte
		chargesCents sql.NullInt64
	)

	err := row.Scan(
		&id,
		&response.Barcode,
		&response.Shipper,
		&response.Consignee,
		&response.WeightKg,
		&response.PieceCount,
		&primaryRack,
		&status,
		&response.IntakeAt,
		&releasedAt,
		&rawLocations,
		&response.Notes,
		&chargesCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("barcode", query.Barcode())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.ID = shipmentID
	response.Status = shipment.Status(status).String()

	if primaryRack.Valid {
		response.PrimaryRack = primaryRack.String
	}
	if releasedAt.Valid {
		response.ReleasedAt = &releasedAt.Time
	}
	if chargesCents.Valid {
		charges := kernel.NewMoneyFromCents(chargesCents.Int64).Float64()
		response.TotalCharges = &charges
	}

	response.PieceLocations, err = decodeLocations(rawLocations)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return response, nil
}

// decodeLocations converts the JSON placement document into the read model.
func decodeLocations(raw []byte) (map[int]PieceLocationResponse, error) {
	locations := make(map[int]PieceLocationResponse)
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
			return nil, errs.NewValueIsInvalidErrorWithCause("pieceOrdinal", err)
		}

		locations[ordinal] = PieceLocationResponse{
			RackID:     doc.RackID,
			AssignedAt: doc.AssignedAt,
		}
	}

	return locations, nil
}
