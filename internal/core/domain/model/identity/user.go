package identity

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the RestoreUser factory.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")

// User is a read-only snapshot of an identity-store record. The core consults
// it for authorization (role, ownership) and bid eligibility (verification,
// vehicle type) but never writes it back.
type User struct {
	id           kernel.UUID
	name         string
	phone        string
	role         Role
	verification VerificationStatus
	vehicleType  *VehicleType
	rating       float64

	isConstructed bool
}

// RestoreUser reconstructs a user snapshot from the identity store.
// vehicleType is nil for users without a registered vehicle (customers,
// unregistered drivers).
func RestoreUser(
	id kernel.UUID,
	name string,
	phone string,
	role Role,
	verification VerificationStatus,
	vehicleType *VehicleType,
	rating float64,
) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		verification.Validate(),
	); err != nil {
		return nil, err
	}
	if vehicleType != nil {
		if err := vehicleType.Validate(); err != nil {
			return nil, err
		}
	}

	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		role:          role,
		verification:  verification,
		vehicleType:   vehicleType,
		rating:        rating,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created via RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's full name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's phone number, the primary identifier upstream.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's marketplace role.
func (u *User) Role() Role {
	return u.role
}

// Verification returns the user's verification status.
func (u *User) Verification() VerificationStatus {
	return u.verification
}

// VehicleType returns the driver's vehicle type, nil if none is registered.
func (u *User) VehicleType() *VehicleType {
	return u.vehicleType
}

// Rating returns the user's aggregate rating.
func (u *User) Rating() float64 {
	return u.rating
}

// IsVerifiedDriver reports whether the user may submit bids at all.
func (u *User) IsVerifiedDriver() bool {
	return u.role == RoleDriver && u.verification == VerificationVerified
}
