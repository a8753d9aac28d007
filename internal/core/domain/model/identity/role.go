package identity

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Role identifies which side of the marketplace a user acts on.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer can create, publish, and pay for shipments.
	RoleCustomer

	// RoleDriver can bid on published shipments and carry them out.
	RoleDriver

	// RoleAdmin is reserved for platform operations.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleDriver:   "driver",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks the Role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
