package kernel

import (
	"errors"
	"fmt"

	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

const (
	// LongitudeMin and LongitudeMax bound valid longitude values in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0
	// LatitudeMin and LatitudeMax bound valid latitude values in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object holding geographic coordinates and a
// human-readable address. Shipments carry two of these: pickup and dropoff.
// The zero value is invalid and fails validation.
//
// Example:
//
//	loc, err := kernel.NewLocation(38.7578, 9.0107, "Mexico Square, Addis Ababa")
//	if err != nil {
//	    // handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	longitude float64
	latitude  float64
	address   string
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with validated coordinates and a non-empty address.
func NewLocation(longitude, latitude float64, address string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setLongitude(longitude),
		loc.setLatitude(latitude),
		loc.setAddress(address),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created through NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Address returns the human-readable address.
func (l Location) Address() string {
	return l.address
}

// IsEqual compares coordinates and address.
func (l Location) IsEqual(other Location) bool {
	return l.longitude == other.longitude &&
		l.latitude == other.latitude &&
		l.address == other.address
}

// String implements fmt.Stringer for logging.
func (l Location) String() string {
	return fmt.Sprintf("Location(%.4f,%.4f %q)", l.longitude, l.latitude, l.address)
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}
