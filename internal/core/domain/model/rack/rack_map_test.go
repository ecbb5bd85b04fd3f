package rack_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/rack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap(t *testing.T) {
	t.Run("enumerates the full fixed universe deterministically", func(t *testing.T) {
		m, err := rack.NewMap([]string{"B", "A"}, 2, 3)

		require.NoError(t, err)
		assert.Equal(t, 12, m.Size())

		slots := m.Slots()
		require.Len(t, slots, 12)
		// Zones sorted, then rows, then columns.
		assert.Equal(t, "A-01-01", slots[0].ID().String())
		assert.Equal(t, "A-01-02", slots[1].ID().String())
		assert.Equal(t, "A-02-03", slots[5].ID().String())
		assert.Equal(t, "B-01-01", slots[6].ID().String())
		assert.Equal(t, "B-02-03", slots[11].ID().String())
	})

	t.Run("derives permanent scan codes from ids", func(t *testing.T) {
		m, err := rack.NewMap([]string{"A"}, 1, 1)

		require.NoError(t, err)
		slot := m.Slots()[0]
		assert.Equal(t, "RACK_A_01_01", slot.ScanCode())

		// Scan code and id remain exact transforms of each other.
		parsed, err := kernel.RackIDFromScanCode(slot.ScanCode())
		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(slot.ID()))
	})

	t.Run("rejects empty or invalid dimensions", func(t *testing.T) {
		_, err := rack.NewMap(nil, 2, 2)
		require.Error(t, err)

		_, err = rack.NewMap([]string{"A"}, 0, 2)
		require.Error(t, err)

		_, err = rack.NewMap([]string{"A"}, 2, -1)
		require.Error(t, err)
	})

	t.Run("rejects duplicate zones", func(t *testing.T) {
		_, err := rack.NewMap([]string{"A", "A"}, 1, 1)
		require.Error(t, err)
	})
}

func TestMap_Lookups(t *testing.T) {
	m, err := rack.NewMap([]string{"A"}, 2, 2)
	require.NoError(t, err)

	t.Run("finds slots by id and scan code", func(t *testing.T) {
		id, err := kernel.RackIDFromString("A-02-01")
		require.NoError(t, err)

		byID, ok := m.SlotByID(id)
		require.True(t, ok)
		assert.Equal(t, "RACK_A_02_01", byID.ScanCode())

		byScan, ok := m.SlotByScanCode("RACK_A_02_01")
		require.True(t, ok)
		assert.True(t, byScan.ID().IsEqual(id))
	})

	t.Run("unknown slots are not found", func(t *testing.T) {
		id, err := kernel.RackIDFromString("Z-99-99")
		require.NoError(t, err)

		_, ok := m.SlotByID(id)
		assert.False(t, ok)

		_, ok = m.SlotByScanCode("RACK_Z_99_99")
		assert.False(t, ok)
	})
}

func TestStatusForAge(t *testing.T) {
	testCases := []struct {
		name     string
		age      time.Duration
		expected rack.SlotStatus
	}{
		{"fresh occupant", 24 * time.Hour, rack.Occupied},
		{"exactly at warning threshold", rack.WarningAge, rack.Occupied},
		{"just past warning threshold", rack.WarningAge + time.Second, rack.Warning},
		{"exactly at overdue threshold", rack.OverdueAge, rack.Warning},
		{"just past overdue threshold", rack.OverdueAge + time.Second, rack.Overdue},
		{"long overdue", 90 * 24 * time.Hour, rack.Overdue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rack.StatusForAge(tc.age))
		})
	}
}

func TestMap_Project(t *testing.T) {
	m, err := rack.NewMap([]string{"A"}, 1, 3)
	require.NoError(t, err)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	barcode, err := kernel.BarcodeFromString("WH2608300417")
	require.NoError(t, err)

	rackID := func(s string) kernel.RackID {
		id, idErr := kernel.RackIDFromString(s)
		require.NoError(t, idErr)
		return id
	}

	t.Run("derives free, occupied, warning, and overdue", func(t *testing.T) {
		occupants := []rack.Occupant{
			{Barcode: barcode, RackID: rackID("A-01-01"), IntakeAt: now.Add(-2 * 24 * time.Hour)},
			{Barcode: barcode, RackID: rackID("A-01-02"), IntakeAt: now.Add(-25 * 24 * time.Hour)},
			{Barcode: barcode, RackID: rackID("A-01-03"), IntakeAt: now.Add(-40 * 24 * time.Hour)},
		}

		views := m.Project(occupants, now)

		require.Len(t, views, 3)
		assert.Equal(t, rack.Occupied, views[0].Status)
		assert.Equal(t, rack.Warning, views[1].Status)
		assert.Equal(t, rack.Overdue, views[2].Status)
		for _, view := range views {
			require.NotNil(t, view.OccupantBarcode)
			assert.True(t, view.OccupantBarcode.IsEqual(barcode))
		}
	})

	t.Run("unoccupied slots are free", func(t *testing.T) {
		views := m.Project(nil, now)

		require.Len(t, views, 3)
		for _, view := range views {
			assert.Equal(t, rack.Free, view.Status)
			assert.Nil(t, view.OccupantBarcode)
		}
	})

	t.Run("projection is pure and repeatable", func(t *testing.T) {
		occupants := []rack.Occupant{
			{Barcode: barcode, RackID: rackID("A-01-01"), IntakeAt: now.Add(-24 * time.Hour)},
		}

		first := m.Project(occupants, now)
		second := m.Project(occupants, now)

		assert.Equal(t, first, second)
	})

	t.Run("clamps future intake to zero age", func(t *testing.T) {
		occupants := []rack.Occupant{
			{Barcode: barcode, RackID: rackID("A-01-01"), IntakeAt: now.Add(time.Hour)},
		}

		views := m.Project(occupants, now)

		assert.Equal(t, rack.Occupied, views[0].Status)
		assert.Equal(t, time.Duration(0), views[0].OccupantAge)
	})
}
