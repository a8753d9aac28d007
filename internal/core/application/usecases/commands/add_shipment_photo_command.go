package commands

import (
	"errors"
	"io"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var ErrAddShipmentPhotoCommandIsNotConstructed = errors.New(
	"AddShipmentPhotoCommand must be created via NewAddShipmentPhotoCommand constructor",
)

// AddShipmentPhotoCommand represents an owner uploading a photo to a draft
// shipment. Content is the raw image stream from the request.
type AddShipmentPhotoCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	actorID    kernel.UUID
	name       string
	content    io.Reader

	guard guard.ConstructorGuard
}

// NewAddShipmentPhotoCommand creates a command to attach a photo.
func NewAddShipmentPhotoCommand(shipmentID, actorID kernel.UUID, name string, content io.Reader) (AddShipmentPhotoCommand, error) {
	cmd := AddShipmentPhotoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setActorID(actorID),
		cmd.setName(name),
		cmd.setContent(content),
	); err != nil {
		return AddShipmentPhotoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentPhotoCommandIsNotConstructed)
}

// ShipmentID returns the shipment receiving the photo.
func (c AddShipmentPhotoCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ActorID returns the acting user's identifier.
func (c AddShipmentPhotoCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Name returns the upload's file name, used to derive the stored image id.
func (c AddShipmentPhotoCommand) Name() string {
	return c.name
}

// Content returns the image stream.
func (c AddShipmentPhotoCommand) Content() io.Reader {
	return c.content
}

func (c *AddShipmentPhotoCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AddShipmentPhotoCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}

func (c *AddShipmentPhotoCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("photo name")
	}
	c.name = name
	return nil
}

func (c *AddShipmentPhotoCommand) setContent(content io.Reader) error {
	if content == nil {
		return errs.NewValueIsRequiredError("photo content")
	}
	c.content = content
	return nil
}
