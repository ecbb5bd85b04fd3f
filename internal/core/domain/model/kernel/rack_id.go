package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// ErrRackIDIsNotConstructed is returned when validating a zero-value RackID.
// Rack ids must be created via NewRackID, RackIDFromString, or
// RackIDFromScanCode.
var ErrRackIDIsNotConstructed = errs.NewValueIsRequiredError(
	"rack id must be created via NewRackID, RackIDFromString, or RackIDFromScanCode")

// rackComponentPattern constrains zone, row, and column segments. Segments may
// not contain the '-' or '_' separators, which keeps the human id and the scan
// code exact, reversible transforms of each other.
var rackComponentPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// rackScanPrefix starts every rack scan label.
const rackScanPrefix = "RACK_"

// RackID addresses one storage slot by zone, row, and column. It has two
// textual forms that are reversible by separator substitution only:
//
//	human id:  <ZONE>-<ROW>-<COL>   e.g. "A-01-03"
//	scan code: RACK_<ZONE>_<ROW>_<COL>  e.g. "RACK_A_01_03"
//
// The scan code is the permanent label glued to the physical rack; it is
// derived from the id and never regenerated.
//
// RackID is an immutable value object; the zero value is invalid.
type RackID struct {
	zone   string
	row    string
	column string

	guard guard.ConstructorGuard
}

// NewRackID creates a rack id from its components. Each component must be
// non-empty, uppercase alphanumeric, and free of separator characters.
func NewRackID(zone, row, column string) (RackID, error) {
	id := RackID{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateRackComponent("zone", zone); err != nil {
		return RackID{}, err
	}
	if err := validateRackComponent("row", row); err != nil {
		return RackID{}, err
	}
	if err := validateRackComponent("column", column); err != nil {
		return RackID{}, err
	}

	id.zone, id.row, id.column = zone, row, column
	return id, nil
}

// RackIDFromString parses the human-readable hyphenated form "<ZONE>-<ROW>-<COL>".
func RackIDFromString(s string) (RackID, error) {
	return rackIDFromParts("rackId", s, strings.Split(s, "-"))
}

// RackIDFromScanCode parses the scan label "RACK_<ZONE>_<ROW>_<COL>".
func RackIDFromScanCode(code string) (RackID, error) {
	if !strings.HasPrefix(code, rackScanPrefix) {
		return RackID{}, errs.NewValueIsInvalidErrorWithCause(
			"rackScanCode",
			fmt.Errorf("%q does not match RACK_<ZONE>_<ROW>_<COL>", code),
		)
	}

	return rackIDFromParts("rackScanCode", code, strings.Split(strings.TrimPrefix(code, rackScanPrefix), "_"))
}

func rackIDFromParts(paramName, original string, parts []string) (RackID, error) {
	if len(parts) != 3 {
		return RackID{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%q must have exactly three zone/row/column segments", original),
		)
	}

	return NewRackID(parts[0], parts[1], parts[2])
}

func validateRackComponent(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	if !rackComponentPattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause(
			name,
			fmt.Errorf("%q must be uppercase alphanumeric without separators", value),
		)
	}

	return nil
}

// Zone returns the zone segment.
func (r RackID) Zone() string {
	return r.zone
}

// Row returns the row segment.
func (r RackID) Row() string {
	return r.row
}

// Column returns the column segment.
func (r RackID) Column() string {
	return r.column
}

// String returns the human-readable hyphenated id, e.g. "A-01-03".
func (r RackID) String() string {
	return fmt.Sprintf("%s-%s-%s", r.zone, r.row, r.column)
}

// ScanCode returns the permanent scan label, e.g. "RACK_A_01_03".
func (r RackID) ScanCode() string {
	return fmt.Sprintf("%s%s_%s_%s", rackScanPrefix, r.zone, r.row, r.column)
}

// IsEqual compares two rack ids by value.
func (r RackID) IsEqual(other RackID) bool {
	return r.zone == other.zone && r.row == other.row && r.column == other.column
}

// Validate checks that the rack id was created through a constructor.
func (r RackID) Validate() error {
	return r.guard.Validate(ErrRackIDIsNotConstructed)
}
