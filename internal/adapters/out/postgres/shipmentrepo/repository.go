package shipmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// activeRackConstraint is the partial unique index that allows at most one
// confirmed shipment per primary rack (see ShipmentDTO.PrimaryRackID).
const activeRackConstraint = "idx_shipments_active_rack"

// conflictError maps a unique-constraint violation to the matching port
// sentinel, or returns the original error untouched.
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	if pgErr.ConstraintName == activeRackConstraint {
		return ports.ErrRackConflict
	}
	return ports.ErrBarcodeConflict
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database. A barcode collision surfaces as
// ports.ErrBarcodeConflict so the intake handler can regenerate and retry.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return conflictError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. The placement document
// is rewritten whole, so a multi-piece assignment lands atomically. Moving
// the shipment onto a rack another confirmed shipment holds surfaces as
// ports.ErrRackConflict.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return conflictError(result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByBarcode retrieves a shipment by its barcode.
func (r *GormShipmentRepository) FindByBarcode(ctx context.Context, barcode kernel.Barcode) (*shipment.Shipment, error) {
	if err := barcode.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("barcode", barcode.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindActiveOccupant retrieves the confirmed shipment whose primary rack is
// rackID. Used as the occupancy check before a placement commits.
func (r *GormShipmentRepository) FindActiveOccupant(ctx context.Context, rackID kernel.RackID) (*shipment.Shipment, error) {
	if err := rackID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "status = ? AND primary_rack_id = ?", shipment.Confirmed, rackID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rackId", rackID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllConfirmed retrieves every shipment still in Confirmed status.
func (r *GormShipmentRepository) GetAllConfirmed(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", shipment.Confirmed).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
