package queries

import (
	"errors"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/pkg/guard"
)

var ErrGetAvailableShipmentsQueryIsNotConstructed = errors.New(
	"GetAvailableShipmentsQuery must be created via NewGetAvailableShipmentsQuery constructor",
)

// GetAvailableShipmentsQuery retrieves shipments open for bidding,
// optionally narrowed to those a given vehicle type may carry.
type GetAvailableShipmentsQuery struct { //nolint:recvcheck //using for validation
	vehicleType *identity.VehicleType

	guard guard.ConstructorGuard
}

// NewGetAvailableShipmentsQuery creates a query for the bidding board.
// vehicleType is nil to list everything.
func NewGetAvailableShipmentsQuery(vehicleType *identity.VehicleType) (GetAvailableShipmentsQuery, error) {
	q := GetAvailableShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if vehicleType != nil {
		if err := vehicleType.Validate(); err != nil {
			return GetAvailableShipmentsQuery{}, err
		}
		vt := *vehicleType
		q.vehicleType = &vt
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableShipmentsQueryIsNotConstructed)
}

// VehicleType returns the optional vehicle filter.
func (q GetAvailableShipmentsQuery) VehicleType() *identity.VehicleType {
	return q.vehicleType
}
