package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrGetShipmentBidsQueryIsNotConstructed = errors.New(
	"GetShipmentBidsQuery must be created via NewGetShipmentBidsQuery constructor",
)

// GetShipmentBidsQuery retrieves the bids on a shipment. The owning
// customer sees the full ledger; a driver sees only their own bid.
type GetShipmentBidsQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID
	actorRole  identity.Role

	guard guard.ConstructorGuard
}

// NewGetShipmentBidsQuery creates a query for a shipment's bids.
func NewGetShipmentBidsQuery(
	shipmentID, actorID kernel.UUID,
	actorRole identity.Role,
) (GetShipmentBidsQuery, error) {
	q := GetShipmentBidsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setActorID(actorID),
		q.setActorRole(actorRole),
	); err != nil {
		return GetShipmentBidsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentBidsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentBidsQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose ledger is requested.
func (q GetShipmentBidsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ActorID returns the requesting user's identifier.
func (q GetShipmentBidsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the requesting user's role.
func (q GetShipmentBidsQuery) ActorRole() identity.Role {
	return q.actorRole
}

func (q *GetShipmentBidsQuery) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.shipmentID = id
	return nil
}

func (q *GetShipmentBidsQuery) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.actorID = id
	return nil
}

func (q *GetShipmentBidsQuery) setActorRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.actorRole = role
	return nil
}

// BidResponse is the flat read model of a bid row.
type BidResponse struct {
	ID         kernel.UUID
	ShipmentID kernel.UUID
	DriverID   kernel.UUID
	DriverName string
	Amount     float64
	Status     string
	BidTime    time.Time
}
