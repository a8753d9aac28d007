package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrPublishShipmentCommandIsNotConstructed = errors.New(
	"PublishShipmentCommand must be created via NewPublishShipmentCommand constructor",
)

// PublishShipmentCommand represents an owner's request to open a draft for
// bidding.
type PublishShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewPublishShipmentCommand creates a command to publish a draft shipment.
func NewPublishShipmentCommand(shipmentID, actorID kernel.UUID) (PublishShipmentCommand, error) {
	cmd := PublishShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
	); err != nil {
		return PublishShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishShipmentCommand) Validate() error {
	return c.guard.Validate(ErrPublishShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment to publish.
func (c PublishShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting user's identifier.
func (c PublishShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *PublishShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *PublishShipmentCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
