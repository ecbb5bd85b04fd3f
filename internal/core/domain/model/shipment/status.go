package shipment

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure shipments
// follow the correct warehouse workflow.
//
// State transitions:
//
//	Confirmed ──> Released
//	    │
//	    └──────> Cancelled
//
// Released and Cancelled are terminal: a shipment in either state accepts no
// further location or rack writes. Status is a value object that validates
// state transitions and provides string representations for persistence and
// display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status assigned at intake. Only confirmed
	// shipments participate in the piece assignment workflow.
	Confirmed

	// Released indicates the shipment has left the warehouse and its final
	// invoice has been computed. Terminal; the location map is frozen.
	Released

	// Cancelled is an administrative terminal state. Cancelled shipments are
	// excluded from assignment and release.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Confirmed: "Confirmed",
		Released:  "Released",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed: "Confirmed",
		Released:  "Released",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Confirmed, Released, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssignable checks whether pieces of a shipment in this status may be
// placed into racks. Assignability is an explicit allow-list: only Confirmed
// qualifies. Released and Cancelled shipments, and any unknown status, are
// rejected so that terminal records can never re-enter the scan workflow.
func (s Status) ValidateAssignable() error {
	if s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not an assignable status", s.String()),
		)
	}
	return nil
}

// Release transitions the status to Released.
//
// Valid transitions:
//   - Confirmed -> Released
//
// Returns (Released, nil) on a valid transition, or (0, error) when the
// shipment is already released, cancelled, or in an unknown state.
func (s Status) Release() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Released, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Confirmed -> Cancelled
//
// Returns (Cancelled, nil) on a valid transition, or (0, error) otherwise.
// Released shipments cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
