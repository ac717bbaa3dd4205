package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Role identifies the kind of actor invoking an operation. Roles arrive from
// the authentication boundary (a JWT claim); the core only ever reasons about
// this enumeration, never about tokens or accounts.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAdmin     Role = "admin"
	RoleRDCStaff  Role = "rdc_staff"
	RoleLogistics Role = "logistics"
)

func getValidRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer:  {},
		RoleAdmin:     {},
		RoleRDCStaff:  {},
		RoleLogistics: {},
	}
}

// ParseRole converts a raw role claim into a Role.
func ParseRole(raw string) (Role, error) {
	if raw == "" {
		return "", errs.NewValueIsRequiredError("role")
	}

	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	if err := role.Validate(); err != nil {
		return "", err
	}

	return role, nil
}

// Validate checks that the role is one of the known actor kinds.
func (r Role) Validate() error {
	if _, ok := getValidRoles()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a known role", string(r)))
	}
	return nil
}

// IsStaff reports whether the role belongs to back-office personnel.
// Staff roles may drive any forward order transition and manage stock;
// customers are restricted to cancellation of their own pending orders.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleRDCStaff || r == RoleLogistics
}

// String returns the persisted role name.
func (r Role) String() string {
	return string(r)
}
