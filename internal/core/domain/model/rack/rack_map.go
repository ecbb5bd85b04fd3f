package rack

import (
	"fmt"
	"sort"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Slot is one addressable storage location in the fixed rack universe. Its
// identity and scan code are permanent: both are derived from the zone, row,
// and column at map initialization and never regenerated. A slot does not own
// its occupant; occupancy is a weak reference resolved from the shipments
// that currently point at the slot.
//
// Slot is an immutable value; the Map constructs all of them.
type Slot struct {
	id       kernel.RackID
	scanCode string
}

// ID returns the slot's rack id.
func (s Slot) ID() kernel.RackID {
	return s.id
}

// ScanCode returns the permanent scan label derived from the id.
func (s Slot) ScanCode() string {
	return s.scanCode
}

// Map is the complete, fixed universe of storage slots. It is built once at
// initialization by deterministic zone x row x column enumeration; slots are
// never created or destroyed afterward. Only the occupants and derived
// statuses of slots change over a Map's lifetime, and those live outside the
// Map itself.
//
// Map is immutable after construction and safe for concurrent readers.
type Map struct {
	slots      []Slot
	byID       map[string]Slot
	byScanCode map[string]Slot
}

// NewMap enumerates the slot universe for the given zones, with rows x columns
// slots per zone. Zones are sorted so enumeration order is deterministic; rows
// and columns are numbered from 1 and zero-padded to two digits.
//
// Example: NewMap([]string{"A", "B"}, 2, 3) yields A-01-01 .. A-02-03 and
// B-01-01 .. B-02-03 with scan codes RACK_A_01_01 and so on.
func NewMap(zones []string, rows, columns int) (*Map, error) {
	if len(zones) == 0 {
		return nil, errs.NewValueIsRequiredError("zones")
	}
	if rows <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("rows", fmt.Errorf("%d is not greater than 0", rows))
	}
	if columns <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("columns", fmt.Errorf("%d is not greater than 0", columns))
	}

	sorted := make([]string, len(zones))
	copy(sorted, zones)
	sort.Strings(sorted)

	m := &Map{
		slots:      make([]Slot, 0, len(sorted)*rows*columns),
		byID:       make(map[string]Slot, len(sorted)*rows*columns),
		byScanCode: make(map[string]Slot, len(sorted)*rows*columns),
	}

	for _, zone := range sorted {
		for row := 1; row <= rows; row++ {
			for column := 1; column <= columns; column++ {
				id, err := kernel.NewRackID(zone, fmt.Sprintf("%02d", row), fmt.Sprintf("%02d", column))
				if err != nil {
					return nil, err
				}

				if _, exists := m.byID[id.String()]; exists {
					return nil, errs.NewValueIsInvalidErrorWithCause(
						"zones",
						fmt.Errorf("duplicate zone %q in rack universe", zone),
					)
				}

				slot := Slot{id: id, scanCode: id.ScanCode()}
				m.slots = append(m.slots, slot)
				m.byID[id.String()] = slot
				m.byScanCode[slot.scanCode] = slot
			}
		}
	}

	return m, nil
}

// Size returns the number of slots in the universe.
func (m *Map) Size() int {
	return len(m.slots)
}

// Slots returns all slots in deterministic enumeration order. The returned
// slice is a copy.
func (m *Map) Slots() []Slot {
	out := make([]Slot, len(m.slots))
	copy(out, m.slots)
	return out
}

// SlotByID looks up a slot by its rack id.
func (m *Map) SlotByID(id kernel.RackID) (Slot, bool) {
	slot, ok := m.byID[id.String()]
	return slot, ok
}

// SlotByScanCode looks up a slot by its permanent scan label.
func (m *Map) SlotByScanCode(code string) (Slot, bool) {
	slot, ok := m.byScanCode[code]
	return slot, ok
}

// Occupant is the read-model input to status projection: one active shipment
// currently pointing at a rack.
type Occupant struct {
	Barcode  kernel.Barcode
	RackID   kernel.RackID
	IntakeAt time.Time
}

// SlotView is one projected slot with its derived status and occupant, used
// by map and dashboard reads.
type SlotView struct {
	Slot            Slot
	Status          SlotStatus
	OccupantBarcode *kernel.Barcode
	OccupantAge     time.Duration
}

// Project recomputes the status of every slot from the active shipments that
// occupy racks as of now. Slots without an occupant are Free; occupied slots
// derive Warning/Overdue from occupant age. Pure and recomputed on demand;
// callers refresh by calling again with fresh inputs.
func (m *Map) Project(occupants []Occupant, now time.Time) []SlotView {
	byRack := make(map[string]Occupant, len(occupants))
	for _, occ := range occupants {
		byRack[occ.RackID.String()] = occ
	}

	views := make([]SlotView, 0, len(m.slots))
	for _, slot := range m.slots {
		view := SlotView{Slot: slot, Status: Free}

		if occ, ok := byRack[slot.id.String()]; ok {
			age := now.Sub(occ.IntakeAt)
			if age < 0 {
				age = 0
			}
			barcode := occ.Barcode
			view.Status = StatusForAge(age)
			view.OccupantBarcode = &barcode
			view.OccupantAge = age
		}

		views = append(views, view)
	}

	return views
}
