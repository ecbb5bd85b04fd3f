package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/rack"
	"warehouse/internal/core/domain/model/shipment"
)

// GetRackMapQueryHandler builds the live rack map view. Reads the occupancy
// rows with direct SQL for optimal read performance in the CQRS pattern and
// projects slot statuses through the configured rack map.
//
// Example:
//
//	handler := NewGetRackMapQueryHandler(db, rackMap)
//	query := NewGetRackMapQuery()
//
//	slots, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get rack map: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Projected %d slots\n", len(slots))
type GetRackMapQueryHandler struct {
	db      *gorm.DB
	rackMap *rack.Map
}

// NewGetRackMapQueryHandler creates a handler for rack map queries.
// Requires a GORM database connection and the warehouse rack map.
func NewGetRackMapQueryHandler(db *gorm.DB, rackMap *rack.Map) GetRackMapQueryHandler {
	return GetRackMapQueryHandler{db: db, rackMap: rackMap}
}

// Handle executes the query and returns one entry per configured slot in
// deterministic enumeration order. Statuses are derived from occupant
// storage age at the moment of the call.
func (h GetRackMapQueryHandler) Handle(
	ctx context.Context,
	query GetRackMapQuery,
) ([]GetRackMapQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	occupants := make([]rack.Occupant, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			barcode,
			primary_rack_id,
			intake_at
		FROM shipments
		WHERE status = ? AND primary_rack_id IS NOT NULL
	`, int(shipment.Confirmed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rawBarcode, rawRackID string
		var intakeAt time.Time

		if err = rows.Scan(&rawBarcode, &rawRackID, &intakeAt); err != nil {
			return nil, err
		}

		barcode, codeErr := kernel.BarcodeFromString(rawBarcode)
		if codeErr != nil {
			return nil, codeErr
		}

		rackID, rackErr := kernel.RackIDFromString(rawRackID)
		if rackErr != nil {
			return nil, rackErr
		}

		occupants = append(occupants, rack.Occupant{
			Barcode:  barcode,
			RackID:   rackID,
			IntakeAt: intakeAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	views := h.rackMap.Project(occupants, time.Now())

	responses := make([]GetRackMapQueryResponse, 0, len(views))
	for _, view := range views {
		response := GetRackMapQueryResponse{
			RackID:          view.Slot.ID().String(),
			ScanCode:        view.Slot.ScanCode(),
			Status:          view.Status.String(),
			OccupantAgeDays: int(view.OccupantAge.Hours() / 24),
		}
		if view.OccupantBarcode != nil {
			response.OccupantBarcode = view.OccupantBarcode.String()
		}
		responses = append(responses, response)
	}

	return responses, nil
}
