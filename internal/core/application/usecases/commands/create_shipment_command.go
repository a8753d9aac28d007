package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a customer's request to open a new
// shipment draft.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	customerID kernel.UUID
	details    shipment.Details

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment
// draft. Detail validation is delegated to the aggregate constructor; the
// command only checks identifiers.
func NewCreateShipmentCommand(shipmentID, customerID kernel.UUID, details shipment.Details) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.details = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier the new shipment will carry.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CustomerID returns the acting customer's identifier.
func (c CreateShipmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Details returns the shipment attributes.
func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
