package shipment

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

	// ErrShipmentNotAssignable indicates that the shipment's status excludes
	// it from the piece assignment workflow (released, cancelled, or unknown).
	ErrShipmentNotAssignable = errors.New("shipment is not assignable in its current status")

	// ErrNoPiecesPlaced indicates that an operation requiring at least one
	// committed piece location (relocation, emptying a rack) found none.
	ErrNoPiecesPlaced = errors.New("shipment has no pieces placed in any rack")
)

// Shipment is the aggregate root for one tracked consignment moving through
// the warehouse: intake, multi-piece rack placement, and release with a
// computed storage invoice.
//
// Shipment maintains these invariants:
//   - Identified by an immutable barcode assigned once at intake
//   - Weight is positive, declared piece count is positive and fixed
//   - The piece ordinal -> location map never holds more entries than the
//     declared piece count, and every key is within [1, pieceCount]
//   - Once released or cancelled, the location map and primary rack are
//     frozen; no operation mutates the aggregate again
//   - Release stamps the release timestamp and the final charges exactly once
//
// All mutation goes through validated methods; construction goes through
// NewShipment (intake) or RestoreShipment (rehydration from persistence).
type Shipment struct {
	// id is the internal unique identifier of the shipment
	id kernel.UUID

	// barcode is the human-facing identity printed on the intake label
	barcode kernel.Barcode

	// shipper is the party that delivered the goods to the warehouse
	shipper string

	// consignee is the party the goods are held for
	consignee string

	// weight is the declared total weight in kilograms
	weight kernel.Weight

	// pieceCount is the declared number of physical pieces, fixed at intake
	pieceCount int

	// primaryRack is the rack recorded on the shipment itself,
	// nil until the first placement
	primaryRack *kernel.RackID

	// status is the current lifecycle state
	status Status

	// intakeAt is when the shipment entered the warehouse
	intakeAt time.Time

	// releasedAt is set exactly once, at release
	releasedAt *time.Time

	// locations maps piece ordinal to its committed rack placement
	locations map[int]PieceLocation

	// notes holds free-form intake remarks
	notes string

	// totalCharges is the final invoice total, set at release
	totalCharges *kernel.Money

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a shipment at intake. The shipment starts Confirmed with
// an empty location map and no primary rack.
//
// Parameters:
//   - id: internal unique identifier
//   - barcode: the generated, collision-checked intake barcode
//   - shipper, consignee: required parties (non-empty)
//   - weight: positive declared weight
//   - pieceCount: positive declared number of pieces
//   - intakeAt: intake timestamp
//   - notes: optional free-form remarks
func NewShipment(
	id kernel.UUID,
	barcode kernel.Barcode,
	shipper string,
	consignee string,
	weight kernel.Weight,
	pieceCount int,
	intakeAt time.Time,
	notes string,
) (*Shipment, error) {
	s := &Shipment{
		status:        Confirmed,
		intakeAt:      intakeAt,
		notes:         notes,
		locations:     make(map[int]PieceLocation),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setBarcode(barcode),
		s.setShipper(shipper),
		s.setConsignee(consignee),
		s.setWeight(weight),
		s.setPieceCount(pieceCount),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistent storage, including
// its status, placements, and release data. The restored aggregate behaves
// identically to one built through normal domain operations.
func RestoreShipment(
	id kernel.UUID,
	barcode kernel.Barcode,
	shipper string,
	consignee string,
	weight kernel.Weight,
	pieceCount int,
	primaryRack *kernel.RackID,
	status Status,
	intakeAt time.Time,
	releasedAt *time.Time,
	locations map[int]PieceLocation,
	notes string,
	totalCharges *kernel.Money,
) (*Shipment, error) {
	s := &Shipment{
		intakeAt:      intakeAt,
		releasedAt:    releasedAt,
		notes:         notes,
		totalCharges:  totalCharges,
		locations:     make(map[int]PieceLocation),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setBarcode(barcode),
		s.setShipper(shipper),
		s.setConsignee(consignee),
		s.setWeight(weight),
		s.setPieceCount(pieceCount),
		s.setStatus(status),
		s.setPrimaryRack(primaryRack),
		s.setLocations(locations),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed otherwise. Call when reconstructing
// shipments from persistence to ensure data integrity.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their internal identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's internal unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Barcode returns the immutable intake barcode.
func (s *Shipment) Barcode() kernel.Barcode {
	return s.barcode
}

// Shipper returns the delivering party.
func (s *Shipment) Shipper() string {
	return s.shipper
}

// Consignee returns the receiving party.
func (s *Shipment) Consignee() string {
	return s.consignee
}

// Weight returns the declared weight.
func (s *Shipment) Weight() kernel.Weight {
	return s.weight
}

// PieceCount returns the declared number of physical pieces.
func (s *Shipment) PieceCount() int {
	return s.pieceCount
}

// PrimaryRack returns the rack recorded on the shipment itself.
// Returns nil until the first placement.
func (s *Shipment) PrimaryRack() *kernel.RackID {
	return s.primaryRack
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// IntakeAt returns when the shipment entered the warehouse.
func (s *Shipment) IntakeAt() time.Time {
	return s.intakeAt
}

// ReleasedAt returns the release timestamp, or nil while the shipment is
// still in the warehouse.
func (s *Shipment) ReleasedAt() *time.Time {
	return s.releasedAt
}

// Notes returns the free-form intake remarks.
func (s *Shipment) Notes() string {
	return s.notes
}

// TotalCharges returns the final invoice total, or nil before release.
func (s *Shipment) TotalCharges() *kernel.Money {
	return s.totalCharges
}

// Locations returns a copy of the piece ordinal -> location map. Mutating the
// returned map does not affect the aggregate.
func (s *Shipment) Locations() map[int]PieceLocation {
	out := make(map[int]PieceLocation, len(s.locations))
	for ordinal, loc := range s.locations {
		out[ordinal] = loc
	}
	return out
}

// PieceOrdinals returns every declared piece ordinal, 1 through PieceCount.
// The assignment workflow captures this full set when any single piece of the
// shipment is scanned.
func (s *Shipment) PieceOrdinals() []int {
	ordinals := make([]int, 0, s.pieceCount)
	for i := 1; i <= s.pieceCount; i++ {
		ordinals = append(ordinals, i)
	}
	return ordinals
}

// ValidateAssignable reports whether the shipment may participate in the
// assignment workflow. Returns ErrShipmentNotAssignable for released,
// cancelled, or unknown statuses.
func (s *Shipment) ValidateAssignable() error {
	if err := s.status.ValidateAssignable(); err != nil {
		return fmt.Errorf("%w: %w", ErrShipmentNotAssignable, err)
	}
	return nil
}

// AssignPieces commits placements for the given piece ordinals into one rack
// and records that rack as the shipment's primary rack.
//
// The write is all-or-nothing within the aggregate: every ordinal is validated
// against [1, PieceCount] before any entry is written, so a bad ordinal leaves
// the location map untouched. Entries are keyed by ordinal with overwrite
// semantics, which makes re-committing the same piece-to-rack pair idempotent.
//
// Returns ErrShipmentNotAssignable when the shipment is released or cancelled;
// the location map is left unchanged in that case.
func (s *Shipment) AssignPieces(rackID kernel.RackID, ordinals []int, operator kernel.UUID, at time.Time) error {
	if err := s.ValidateAssignable(); err != nil {
		return err
	}

	if err := errors.Join(rackID.Validate(), operator.Validate()); err != nil {
		return err
	}

	if len(ordinals) == 0 {
		return errs.NewValueIsRequiredError("pieceOrdinals")
	}

	for _, ordinal := range ordinals {
		if ordinal < 1 || ordinal > s.pieceCount {
			return errs.NewValueIsOutOfRangeError("pieceOrdinal", ordinal, 1, s.pieceCount)
		}
	}

	location, err := NewPieceLocation(rackID, at, operator)
	if err != nil {
		return err
	}

	for _, ordinal := range ordinals {
		s.locations[ordinal] = location
	}
	s.primaryRack = &rackID

	return nil
}

// Relocate moves every placed piece of the shipment into another rack,
// preserving the original placement count. Intended for administrative
// corrections; callers enforce the elevated-privilege gate.
//
// Returns ErrNoPiecesPlaced when the shipment has no committed locations yet.
func (s *Shipment) Relocate(rackID kernel.RackID, operator kernel.UUID, at time.Time) error {
	if err := s.ValidateAssignable(); err != nil {
		return err
	}

	if len(s.locations) == 0 {
		return ErrNoPiecesPlaced
	}

	location, err := NewPieceLocation(rackID, at, operator)
	if err != nil {
		return err
	}

	for ordinal := range s.locations {
		s.locations[ordinal] = location
	}
	s.primaryRack = &rackID

	return nil
}

// ClearLocations removes every committed placement and the primary rack.
// Intended for the administrative empty-rack correction; callers enforce the
// elevated-privilege gate.
func (s *Shipment) ClearLocations() error {
	if err := s.ValidateAssignable(); err != nil {
		return err
	}

	s.locations = make(map[int]PieceLocation)
	s.primaryRack = nil

	return nil
}

// Release transitions the shipment to Released, stamps the release timestamp,
// and records the final invoice total. After release the location map and
// primary rack are frozen: every mutating method rejects the aggregate.
//
// Returns an error if the shipment is already released or cancelled.
func (s *Shipment) Release(at time.Time, totalCharges kernel.Money) error {
	newStatus, err := s.status.Release()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.releasedAt = &at
	s.totalCharges = &totalCharges
	return nil
}

// Cancel transitions the shipment to the administrative terminal Cancelled
// state. Cancelled shipments are excluded from assignment and release.
func (s *Shipment) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Age returns how long the shipment has been in storage as of now, using the
// release timestamp as the endpoint once released.
func (s *Shipment) Age(now time.Time) time.Duration {
	end := now
	if s.releasedAt != nil {
		end = *s.releasedAt
	}

	age := end.Sub(s.intakeAt)
	if age < 0 {
		return 0
	}
	return age
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setBarcode(barcode kernel.Barcode) error {
	if err := barcode.Validate(); err != nil {
		return err
	}
	s.barcode = barcode
	return nil
}

func (s *Shipment) setShipper(shipper string) error {
	if shipper == "" {
		return errs.NewValueIsRequiredError("shipper")
	}
	s.shipper = shipper
	return nil
}

func (s *Shipment) setConsignee(consignee string) error {
	if consignee == "" {
		return errs.NewValueIsRequiredError("consignee")
	}
	s.consignee = consignee
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setPieceCount(pieceCount int) error {
	if pieceCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"pieceCount is invalid",
			fmt.Errorf("%d is not greater than 0", pieceCount),
		)
	}
	if pieceCount > kernel.PieceOrdinalMax {
		return errs.NewValueIsOutOfRangeError("pieceCount", pieceCount, 1, kernel.PieceOrdinalMax)
	}
	s.pieceCount = pieceCount
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setPrimaryRack(rackID *kernel.RackID) error {
	if rackID != nil {
		if err := rackID.Validate(); err != nil {
			return err
		}
	}
	s.primaryRack = rackID
	return nil
}

// setLocations restores the piece location map, enforcing the piece count
// invariant over persisted data.
func (s *Shipment) setLocations(locations map[int]PieceLocation) error {
	if len(locations) > s.pieceCount {
		return errs.NewValueIsInvalidErrorWithCause(
			"locations is invalid",
			fmt.Errorf("%d entries exceed declared piece count %d", len(locations), s.pieceCount),
		)
	}

	for ordinal, loc := range locations {
		if ordinal < 1 || ordinal > s.pieceCount {
			return errs.NewValueIsOutOfRangeError("pieceOrdinal", ordinal, 1, s.pieceCount)
		}
		if err := loc.Validate(); err != nil {
			return err
		}
		s.locations[ordinal] = loc
	}

	return nil
}
