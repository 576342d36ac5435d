package auth

import "farmfreight/internal/pkg/errs"

// Role identifies which side of a freight booking an account acts on.
type Role string

const (
	// RoleFarmer books vehicles to move crops.
	RoleFarmer Role = "farmer"

	// RoleOwner registers vehicles and collects payment.
	RoleOwner Role = "owner"

	// RoleDriver operates a vehicle and moves bookings through transit.
	RoleDriver Role = "driver"
)

// NewRoleFromString parses and validates a role name.
func NewRoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate reports whether the role is one of the three known roles.
func (r Role) Validate() error {
	switch r {
	case RoleFarmer, RoleOwner, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

func (r Role) String() string {
	return string(r)
}
