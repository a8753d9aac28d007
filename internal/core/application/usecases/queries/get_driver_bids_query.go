package queries

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrGetDriverBidsQueryIsNotConstructed = errors.New(
	"GetDriverBidsQuery must be created via NewGetDriverBidsQuery constructor",
)

// GetDriverBidsQuery retrieves every bid a driver has placed.
type GetDriverBidsQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverBidsQuery creates a query for a driver's bid history.
func NewGetDriverBidsQuery(driverID kernel.UUID) (GetDriverBidsQuery, error) {
	q := GetDriverBidsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setDriverID(driverID); err != nil {
		return GetDriverBidsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverBidsQueryIsNotConstructed)
}

// DriverID returns the driver's identifier.
func (q GetDriverBidsQuery) DriverID() kernel.UUID {
	return q.driverID
}

func (q *GetDriverBidsQuery) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.driverID = id
	return nil
}
