package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// EstimateChargesQueryHandler prices a shipment preview without touching
// its persisted state. The handler rebuilds just enough of the aggregate to
// run the same ChargeCalculator the release path uses.
//
// Example:
//
//	handler := NewEstimateChargesQueryHandler(db, logger)
//	query, _ := NewEstimateChargesQuery(barcode)
//
//	estimate, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to estimate charges: %v", err)
//	    return err
//	}
type EstimateChargesQueryHandler struct {
	db         *gorm.DB
	calculator services.ChargeCalculator
	logger     *slog.Logger
}

// NewEstimateChargesQueryHandler creates a handler for charge preview
// queries. Requires a GORM database connection for query execution.
func NewEstimateChargesQueryHandler(db *gorm.DB, logger *slog.Logger) EstimateChargesQueryHandler {
	return EstimateChargesQueryHandler{
		db:         db,
		calculator: services.NewChargeCalculator(),
		logger:     logger.With("component", "estimate_charges"),
	}
}

// Handle executes the preview. Returns errs.ErrObjectNotFound when no
// shipment carries the barcode. A missing or invalid tariff prices the
// preview at zero, mirroring the release path's degradation, so the
// preview and the eventual release always agree.
func (h EstimateChargesQueryHandler) Handle(
	ctx context.Context,
	query EstimateChargesQuery,
) (EstimateChargesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateChargesQueryResponse{}, err
	}

	shp, err := h.loadShipment(ctx, query.Barcode())
	if err != nil {
		return EstimateChargesQueryResponse{}, err
	}

	tariff, err := h.loadTariff(ctx)
	if err != nil || tariff.Validate() != nil {
		h.logger.Warn("pricing settings unavailable, previewing with zero charges",
			"barcode", query.Barcode().String(), "error", err)
		tariff = services.DefaultTariff()
	}

	charges, err := h.calculator.Calculate(shp, tariff, time.Now())
	if err != nil {
		return EstimateChargesQueryResponse{}, err
	}

	return EstimateChargesQueryResponse{
		Barcode:        query.Barcode().String(),
		StorageDays:    charges.StorageDays,
		ChargeableDays: charges.ChargeableDays,
		Storage:        charges.Storage.Float64(),
		Handling:       charges.Handling.Float64(),
		Total:          charges.Total.Float64(),
	}, nil
}

// loadShipment rebuilds the pricing-relevant part of the aggregate.
func (h EstimateChargesQueryHandler) loadShipment(ctx context.Context, barcode kernel.Barcode) (*shipment.Shipment, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipper,
			consignee,
			weight_kg,
			piece_count,
			status,
			intake_at,
			released_at
		FROM shipments
		WHERE barcode = ?
	`, barcode.String()).Row()

	var (
		id         uuid.UUID
		shipper    string
		consignee  string
		weightKg   float64
		pieceCount int
		status     int
		intakeAt   time.Time
		releasedAt sql.NullTime
	)

	err := row.Scan(&id, &shipper, &consignee, &weightKg, &pieceCount, &status, &intakeAt, &releasedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("barcode", barcode)
	}
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	weight, err := kernel.NewWeight(weightKg)
	if err != nil {
		return nil, err
	}

	var released *time.Time
	if releasedAt.Valid {
		released = &releasedAt.Time
	}

	return shipment.RestoreShipment(
		shipmentID,
		barcode,
		shipper,
		consignee,
		weight,
		pieceCount,
		nil,
		shipment.Status(status),
		intakeAt,
		released,
		nil,
		"",
		nil,
	)
}

// loadTariff assembles the active tariff from the per-name settings rows.
// Missing rows leave the corresponding model disabled, so an empty table
// prices the preview at zero.
func (h EstimateChargesQueryHandler) loadTariff(ctx context.Context) (services.Tariff, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			value,
			enabled
		FROM pricing_settings
	`).Rows()
	if err != nil {
		return services.Tariff{}, err
	}
	defer rows.Close()

	tariff := services.DefaultTariff()

	for rows.Next() {
		var (
			name    string
			value   float64
			enabled bool
		)
		if err := rows.Scan(&name, &value, &enabled); err != nil {
			return services.Tariff{}, err
		}

		switch name {
		case "per_kg_day":
			tariff.PerKgDay = services.Rate{Value: value, Enabled: enabled}
		case "per_day_rate":
			tariff.PerDayRate = services.Rate{Value: value, Enabled: enabled}
		case "flat_rate":
			tariff.FlatRate = services.Rate{Value: value, Enabled: enabled}
		case "handling_fee":
			tariff.HandlingFee = services.Rate{Value: value, Enabled: enabled}
		case "free_days":
			tariff.FreeDays = int(value)
		}
	}

	return tariff, rows.Err()
}
