package queries

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves a single shipment for an actor. Visibility is
// restricted to the owning customer and drivers who bid on it.
type GetShipmentQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment.
func NewGetShipmentQuery(shipmentID, actorID kernel.UUID) (GetShipmentQuery, error) {
	q := GetShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setActorID(actorID),
	); err != nil {
		return GetShipmentQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the requested shipment's identifier.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ActorID returns the requesting user's identifier.
func (q GetShipmentQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetShipmentQuery) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.shipmentID = id
	return nil
}

func (q *GetShipmentQuery) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.actorID = id
	return nil
}
