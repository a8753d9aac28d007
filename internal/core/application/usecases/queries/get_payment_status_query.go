package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrGetPaymentStatusQueryIsNotConstructed = errors.New(
	"GetPaymentStatusQuery must be created via NewGetPaymentStatusQuery constructor",
)

// GetPaymentStatusQuery retrieves the latest payment transaction for a
// shipment.
type GetPaymentStatusQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentStatusQuery creates a query for a shipment's payment state.
func NewGetPaymentStatusQuery(shipmentID, actorID kernel.UUID) (GetPaymentStatusQuery, error) {
	q := GetPaymentStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setShipmentID(shipmentID),
		q.setActorID(actorID),
	); err != nil {
		return GetPaymentStatusQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatusQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose payment is requested.
func (q GetPaymentStatusQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// ActorID returns the requesting user's identifier.
func (q GetPaymentStatusQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetPaymentStatusQuery) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.shipmentID = id
	return nil
}

func (q *GetPaymentStatusQuery) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.actorID = id
	return nil
}

// PaymentStatusResponse is the flat read model of a payment transaction.
type PaymentStatusResponse struct {
	ID          kernel.UUID
	ShipmentID  kernel.UUID
	Amount      float64
	Method      string
	Status      string
	ProviderRef string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
