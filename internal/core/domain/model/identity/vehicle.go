package identity

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// VehicleType classifies a driver's vehicle. Shipments list the vehicle types
// they can be carried by; a driver's type must intersect that set to bid.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleMotorbike suits small urgent parcels.
	VehicleMotorbike

	// VehiclePickup suits medium loads.
	VehiclePickup

	// VehicleTruck suits heavy freight.
	VehicleTruck
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleMotorbike: "motorbike",
		VehiclePickup:    "pickup",
		VehicleTruck:     "truck",
	}
}

// VehicleTypeFromString parses a vehicle type from its wire representation.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vt, str := range getVehicleTypeStrings() {
		if str == s {
			return vt, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type", fmt.Errorf("%q is not a valid vehicle type", s))
}

// Validate checks the vehicle type is one of the defined values.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String implements fmt.Stringer.
func (v VehicleType) String() string {
	if s, ok := getVehicleTypeStrings()[v]; ok {
		return s
	}
	return "unknown"
}

// Matches reports whether the vehicle type satisfies a shipment's requirement
// set. An empty requirement set places no constraint.
func (v VehicleType) Matches(required []VehicleType) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == v {
			return true
		}
	}
	return false
}
