package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/payment"
	"freightbid/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand represents a customer paying for their accepted
// shipment. The amount is not part of the command: it is always the
// accepted bid's price.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID  kernel.UUID
	shipmentID kernel.UUID
	actorID    kernel.UUID
	method     payment.Method

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to start a payment.
func NewInitiatePaymentCommand(paymentID, shipmentID, actorID kernel.UUID, method payment.Method) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
		cmd.setMethod(method),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier the new transaction will carry.
func (c InitiatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ShipmentID returns the shipment being paid for.
func (c InitiatePaymentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the paying customer's identifier.
func (c InitiatePaymentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Method returns the chosen mobile money provider.
func (c InitiatePaymentCommand) Method() payment.Method {
	return c.method
}

func (c *InitiatePaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *InitiatePaymentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *InitiatePaymentCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *InitiatePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
