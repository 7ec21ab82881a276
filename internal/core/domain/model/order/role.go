package order

import (
	"fmt"

	"quickdish/internal/pkg/errs"
)

// Role identifies the capability class of the acting party. Identity and
// role verification happen upstream; the core receives a Role already
// resolved and uses it to gate status transitions and order listings.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer is the party that placed the order.
	RoleCustomer

	// RoleMerchant is the party that owns the restaurant the order targets.
	RoleMerchant
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "CUSTOMER",
		RoleMerchant: "MERCHANT",
	}
}

// RoleFromString parses a Role from its wire representation
// ("CUSTOMER" or "MERCHANT"). Returns an error for anything else.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
