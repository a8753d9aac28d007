package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents the winning driver picking up a paid
// shipment.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to start transit.
func NewStartTransitCommand(shipmentID, actorID kernel.UUID) (StartTransitCommand, error) {
	cmd := StartTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
	); err != nil {
		return StartTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// ShipmentID returns the shipment being picked up.
func (c StartTransitCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting driver's identifier.
func (c StartTransitCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *StartTransitCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *StartTransitCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
