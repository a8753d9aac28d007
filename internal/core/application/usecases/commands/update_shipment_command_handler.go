package commands

import (
	"context"

	"freightbid/internal/pkg/errs"
)

// UpdateShipmentCommandHandler applies a partial edit to a draft shipment.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for draft edits.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the shipment, checks ownership, and applies the patch. The
// aggregate rejects edits once the shipment has left draft.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can edit it")
	}

	if err = aggregate.ApplyPatch(cmd.Patch()); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
