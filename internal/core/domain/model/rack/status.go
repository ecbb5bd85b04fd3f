package rack

import (
	"time"
)

// SlotStatus is the derived state of a storage slot, computed from the
// occupying shipment's age. It is a pure read-side projection: statuses are
// recomputed on demand (map load, dashboard refresh) rather than maintained
// incrementally.
type SlotStatus int

const (
	// Free means no shipment occupies the slot.
	Free SlotStatus = iota

	// Occupied means a shipment occupies the slot within the normal
	// storage window.
	Occupied

	// Warning means the occupant has been stored longer than WarningAge.
	Warning

	// Overdue means the occupant has been stored longer than OverdueAge.
	Overdue
)

const (
	// WarningAge is the storage age beyond which an occupied slot is flagged.
	WarningAge = 21 * 24 * time.Hour

	// OverdueAge is the storage age beyond which an occupied slot is overdue.
	OverdueAge = 30 * 24 * time.Hour
)

// String returns the human-readable name of the status.
func (s SlotStatus) String() string {
	switch s {
	case Free:
		return "Free"
	case Occupied:
		return "Occupied"
	case Warning:
		return "Warning"
	case Overdue:
		return "Overdue"
	default:
		return "Unknown"
	}
}

// StatusForAge derives the status of an occupied slot from its occupant's
// storage age. Callers use Free directly for unoccupied slots.
func StatusForAge(age time.Duration) SlotStatus {
	switch {
	case age > OverdueAge:
		return Overdue
	case age > WarningAge:
		return Warning
	default:
		return Occupied
	}
}
