package shipment_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntake(t *testing.T) (*shipment.Shipment, kernel.UUID) {
	t.Helper()

	id := kernel.NewUUID()
	barcode, err := kernel.BarcodeFromString("WH2608300417")
	require.NoError(t, err)
	weight, err := kernel.NewWeight(10)
	require.NoError(t, err)

	s, err := shipment.NewShipment(
		id, barcode, "Acme Logistics", "Globex Corp", weight, 3,
		time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), "fragile",
	)
	require.NoError(t, err)
	return s, id
}

func mustRackID(t *testing.T, s string) kernel.RackID {
	t.Helper()
	id, err := kernel.RackIDFromString(s)
	require.NoError(t, err)
	return id
}

func TestNewShipment(t *testing.T) {
	t.Run("creates a confirmed shipment with empty locations", func(t *testing.T) {
		s, id := validIntake(t)

		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "WH2608300417", s.Barcode().String())
		assert.Equal(t, shipment.Confirmed, s.Status())
		assert.Equal(t, 3, s.PieceCount())
		assert.Empty(t, s.Locations())
		assert.Nil(t, s.PrimaryRack())
		assert.Nil(t, s.ReleasedAt())
		assert.Nil(t, s.TotalCharges())
		assert.Equal(t, "fragile", s.Notes())
	})

	t.Run("requires shipper and consignee", func(t *testing.T) {
		id := kernel.NewUUID()
		barcode, _ := kernel.BarcodeFromString("WH2608300417")
		weight, _ := kernel.NewWeight(10)

		_, err := shipment.NewShipment(id, barcode, "", "Globex Corp", weight, 3, time.Now(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = shipment.NewShipment(id, barcode, "Acme", "", weight, 3, time.Now(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a non-positive piece count", func(t *testing.T) {
		id := kernel.NewUUID()
		barcode, _ := kernel.BarcodeFromString("WH2608300417")
		weight, _ := kernel.NewWeight(10)

		_, err := shipment.NewShipment(id, barcode, "Acme", "Globex", weight, 0, time.Now(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pieceCount is invalid")
	})

	t.Run("rejects an unconstructed weight", func(t *testing.T) {
		id := kernel.NewUUID()
		barcode, _ := kernel.BarcodeFromString("WH2608300417")
		var weight kernel.Weight

		_, err := shipment.NewShipment(id, barcode, "Acme", "Globex", weight, 3, time.Now(), "")
		require.Error(t, err)
	})

	t.Run("collects multiple validation errors", func(t *testing.T) {
		var id kernel.UUID
		var barcode kernel.Barcode
		var weight kernel.Weight

		_, err := shipment.NewShipment(id, barcode, "", "", weight, -1, time.Now(), "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "barcode must be created")
		assert.Contains(t, err.Error(), "shipper")
		assert.Contains(t, err.Error(), "consignee")
	})
}

func TestShipment_PieceOrdinals(t *testing.T) {
	s, _ := validIntake(t)

	assert.Equal(t, []int{1, 2, 3}, s.PieceOrdinals())
}

func TestShipment_AssignPieces(t *testing.T) {
	rack := func(t *testing.T) kernel.RackID { return mustRackID(t, "A-01-03") }
	operator := kernel.NewUUID()
	at := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	t.Run("places every given ordinal and sets the primary rack", func(t *testing.T) {
		s, _ := validIntake(t)

		err := s.AssignPieces(rack(t), s.PieceOrdinals(), operator, at)

		require.NoError(t, err)
		locations := s.Locations()
		require.Len(t, locations, 3)
		for ordinal := 1; ordinal <= 3; ordinal++ {
			loc, ok := locations[ordinal]
			require.True(t, ok, "ordinal %d missing", ordinal)
			assert.True(t, loc.RackID().IsEqual(rack(t)))
			assert.Equal(t, at, loc.AssignedAt())
			assert.True(t, loc.Operator().IsEqual(operator))
		}
		require.NotNil(t, s.PrimaryRack())
		assert.True(t, s.PrimaryRack().IsEqual(rack(t)))
	})

	t.Run("re-committing the same pair keeps exactly one entry per ordinal", func(t *testing.T) {
		s, _ := validIntake(t)

		require.NoError(t, s.AssignPieces(rack(t), s.PieceOrdinals(), operator, at))
		require.NoError(t, s.AssignPieces(rack(t), s.PieceOrdinals(), operator, at.Add(time.Minute)))

		assert.Len(t, s.Locations(), 3)
	})

	t.Run("an out-of-range ordinal leaves the map untouched", func(t *testing.T) {
		s, _ := validIntake(t)

		err := s.AssignPieces(rack(t), []int{1, 4}, operator, at)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Empty(t, s.Locations())
		assert.Nil(t, s.PrimaryRack())
	})

	t.Run("rejects an empty ordinal set", func(t *testing.T) {
		s, _ := validIntake(t)

		err := s.AssignPieces(rack(t), nil, operator, at)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("released shipment is frozen", func(t *testing.T) {
		s, _ := validIntake(t)
		require.NoError(t, s.AssignPieces(rack(t), s.PieceOrdinals(), operator, at))
		require.NoError(t, s.Release(at.Add(24*time.Hour), kernel.NewMoneyFromCents(1500)))

		err := s.AssignPieces(rack(t), s.PieceOrdinals(), operator, at.Add(48*time.Hour))

		require.ErrorIs(t, err, shipment.ErrShipmentNotAssignable)
		assert.Len(t, s.Locations(), 3)
	})

	t.Run("cancelled shipment is excluded", func(t *testing.T) {
		s, _ := validIntake(t)
		require.NoError(t, s.Cancel())

		err := s.AssignPieces(rack(t), s.PieceOrdinals(), operator, at)

		require.ErrorIs(t, err, shipment.ErrShipmentNotAssignable)
	})
}

func TestShipment_Relocate(t *testing.T) {
	operator := kernel.NewUUID()
	at := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	t.Run("moves every placed piece to the new rack", func(t *testing.T) {
		s, _ := validIntake(t)
		source := mustRackID(t, "A-01-03")
		target := mustRackID(t, "B-02-01")
		require.NoError(t, s.AssignPieces(source, s.PieceOrdinals(), operator, at))

		err := s.Relocate(target, operator, at.Add(time.Hour))

		require.NoError(t, err)
		for _, loc := range s.Locations() {
			assert.True(t, loc.RackID().IsEqual(target))
		}
		assert.True(t, s.PrimaryRack().IsEqual(target))
	})

	t.Run("fails when nothing is placed", func(t *testing.T) {
		s, _ := validIntake(t)

		err := s.Relocate(mustRackID(t, "B-02-01"), operator, at)

		require.ErrorIs(t, err, shipment.ErrNoPiecesPlaced)
	})
}

func TestShipment_ClearLocations(t *testing.T) {
	operator := kernel.NewUUID()
	at := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)

	t.Run("removes all placements and the primary rack", func(t *testing.T) {
		s, _ := validIntake(t)
		require.NoError(t, s.AssignPieces(mustRackID(t, "A-01-03"), s.PieceOrdinals(), operator, at))

		require.NoError(t, s.ClearLocations())

		assert.Empty(t, s.Locations())
		assert.Nil(t, s.PrimaryRack())
	})

	t.Run("released shipment is frozen", func(t *testing.T) {
		s, _ := validIntake(t)
		require.NoError(t, s.Release(at, kernel.NewMoneyFromCents(0)))

		require.ErrorIs(t, s.ClearLocations(), shipment.ErrShipmentNotAssignable)
	})
}

func TestShipment_Release(t *testing.T) {
	t.Run("stamps timestamp and charges exactly once", func(t *testing.T) {
		s, _ := validIntake(t)
		releasedAt := time.Date(2026, 8, 30, 17, 0, 0, 0, time.UTC)
		charges := kernel.NewMoneyFromCents(2050)

		require.NoError(t, s.Release(releasedAt, charges))

		assert.Equal(t, shipment.Released, s.Status())
		require.NotNil(t, s.ReleasedAt())
		assert.Equal(t, releasedAt, *s.ReleasedAt())
		require.NotNil(t, s.TotalCharges())
		assert.True(t, s.TotalCharges().IsEqual(charges))

		require.Error(t, s.Release(releasedAt.Add(time.Hour), charges))
	})
}

func TestShipment_Age(t *testing.T) {
	s, _ := validIntake(t)
	intake := s.IntakeAt()

	t.Run("uses now while in storage", func(t *testing.T) {
		assert.Equal(t, 48*time.Hour, s.Age(intake.Add(48*time.Hour)))
	})

	t.Run("clamps negative elapsed time to zero", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), s.Age(intake.Add(-time.Hour)))
	})

	t.Run("uses the release timestamp once released", func(t *testing.T) {
		require.NoError(t, s.Release(intake.Add(72*time.Hour), kernel.NewMoneyFromCents(0)))

		assert.Equal(t, 72*time.Hour, s.Age(intake.Add(1000*time.Hour)))
	})
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()
	barcode, _ := kernel.BarcodeFromString("WH2608300417")
	weight, _ := kernel.NewWeight(10)
	intakeAt := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	operator := kernel.NewUUID()
	rack := mustRackID(t, "A-01-03")

	location, err := shipment.NewPieceLocation(rack, intakeAt.Add(time.Hour), operator)
	require.NoError(t, err)

	t.Run("restores a placed shipment", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			id, barcode, "Acme", "Globex", weight, 3, &rack,
			shipment.Confirmed, intakeAt, nil,
			map[int]shipment.PieceLocation{1: location, 2: location, 3: location},
			"", nil,
		)

		require.NoError(t, err)
		assert.Len(t, s.Locations(), 3)
		assert.True(t, s.PrimaryRack().IsEqual(rack))
	})

	t.Run("rejects more locations than declared pieces", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			id, barcode, "Acme", "Globex", weight, 1, &rack,
			shipment.Confirmed, intakeAt, nil,
			map[int]shipment.PieceLocation{1: location, 2: location},
			"", nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceed declared piece count")
	})

	t.Run("rejects an out-of-range ordinal key", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			id, barcode, "Acme", "Globex", weight, 3, &rack,
			shipment.Confirmed, intakeAt, nil,
			map[int]shipment.PieceLocation{5: location},
			"", nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects an invalid status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			id, barcode, "Acme", "Globex", weight, 3, nil,
			shipment.Unknown, intakeAt, nil, nil, "", nil,
		)

		require.Error(t, err)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("nil and zero-value shipments fail validation", func(t *testing.T) {
		var s *shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)

		require.ErrorIs(t, (&shipment.Shipment{}).Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}
