package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents an owner withdrawing a shipment before a
// bid is accepted.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
func NewCancelShipmentCommand(shipmentID, actorID kernel.UUID) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
	); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being cancelled.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting user's identifier.
func (c CancelShipmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CancelShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CancelShipmentCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
