package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var ErrSubmitBidCommandIsNotConstructed = errors.New(
	"SubmitBidCommand must be created via NewSubmitBidCommand constructor",
)

// SubmitBidCommand represents a driver's offer on a bidding shipment.
type SubmitBidCommand struct { //nolint:recvcheck //using for validation
	bidID      kernel.UUID
	shipmentID kernel.UUID
	driverID   kernel.UUID
	amount     float64

	guard guard.ConstructorGuard
}

// NewSubmitBidCommand creates a command to place a bid.
func NewSubmitBidCommand(bidID, shipmentID, driverID kernel.UUID, amount float64) (SubmitBidCommand, error) {
	cmd := SubmitBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setShipmentID(shipmentID),
		cmd.setDriverID(driverID),
		cmd.setAmount(amount),
	); err != nil {
		return SubmitBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBidCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBidCommandIsNotConstructed)
}

// BidID returns the identifier the new bid will carry.
func (c SubmitBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ShipmentID returns the shipment being bid on.
func (c SubmitBidCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// DriverID returns the bidding driver's identifier.
func (c SubmitBidCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Amount returns the offered price in ETB.
func (c SubmitBidCommand) Amount() float64 {
	return c.amount
}

func (c *SubmitBidCommand) setBidID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bidID = id
	return nil
}

func (c *SubmitBidCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *SubmitBidCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *SubmitBidCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("bid amount")
	}
	c.amount = amount
	return nil
}
