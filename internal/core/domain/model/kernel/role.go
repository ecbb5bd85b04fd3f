package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Role represents the privilege level of the person driving an operation.
// Administrative corrections (overriding a rack's occupant, relocating a
// shipment, emptying a rack) bypass the two-step scan flow and are gated on
// RoleAdmin everywhere they are exposed.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleOperator is a warehouse floor operator: intake, scanning, release.
	RoleOperator

	// RoleAdmin additionally permits manual rack corrections.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleOperator: "Operator",
		RoleAdmin:    "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleOperator: "Operator",
		RoleAdmin:    "Admin",
	}
}

// RoleFromString parses a role name as carried on the wire.
// Accepted values are the valid role names: "Operator" and "Admin".
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: Operator, Admin. RoleUnknown (0) and any other values are
// invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Returns "Unknown" for invalid role values. Implements fmt.Stringer and is
// safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsAdmin reports whether the role carries administrative privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
