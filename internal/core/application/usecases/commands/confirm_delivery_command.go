package commands

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents the winning driver closing out a
// shipment with proof of delivery.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	actorID     kernel.UUID
	photoURLs   []string
	confirmedAt time.Time

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to record a delivery.
func NewConfirmDeliveryCommand(shipmentID, actorID kernel.UUID, photoURLs []string, confirmedAt time.Time) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		photoURLs: append([]string(nil), photoURLs...),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
		cmd.setConfirmedAt(confirmedAt),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ShipmentID returns the shipment being delivered.
func (c ConfirmDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting driver's identifier.
func (c ConfirmDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// PhotoURLs returns the proof-of-delivery photo URLs.
func (c ConfirmDeliveryCommand) PhotoURLs() []string {
	return append([]string(nil), c.photoURLs...)
}

// ConfirmedAt returns the delivery timestamp.
func (c ConfirmDeliveryCommand) ConfirmedAt() time.Time {
	return c.confirmedAt
}

func (c *ConfirmDeliveryCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setConfirmedAt(confirmedAt time.Time) error {
	if confirmedAt.IsZero() {
		return errs.NewValueIsRequiredError("confirmation time")
	}
	c.confirmedAt = confirmedAt
	return nil
}
