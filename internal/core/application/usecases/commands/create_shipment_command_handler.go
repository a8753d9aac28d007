package commands

import (
	"context"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CreateShipmentCommandHandler opens a shipment draft for a customer.
type CreateShipmentCommandHandler struct {
	uowFactory    ShipmentUoWFactory
	identityStore ports.IdentityStore
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, identityStore ports.IdentityStore) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:    uowFactory,
		identityStore: identityStore,
	}
}

// Handle verifies the actor is a customer and persists a new draft.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := h.identityStore.FindByID(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if actor.Role() != identity.RoleCustomer {
		return errs.NewForbiddenError(cmd.CustomerID().String(), "only customers can create shipments")
	}

	aggregate, err := shipment.NewShipment(cmd.ShipmentID(), cmd.CustomerID(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
