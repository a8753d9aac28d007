package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand represents a customer choosing the winning bid on their
// shipment.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	bidID      kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command to accept a bid.
func NewAcceptBidCommand(shipmentID, bidID, actorID kernel.UUID) (AcceptBidCommand, error) {
	cmd := AcceptBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setBidID(bidID),
		cmd.setActorID(actorID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose bid is being accepted.
func (c AcceptBidCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// BidID returns the winning bid's identifier.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ActorID returns the acting user's identifier.
func (c AcceptBidCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AcceptBidCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AcceptBidCommand) setBidID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bidID = id
	return nil
}

func (c *AcceptBidCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
