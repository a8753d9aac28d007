package commands

import (
	"context"
	"fmt"
	"log/slog"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// PublishShipmentCommandHandler opens a draft for bidding and fans out a
// new-shipment notification to every verified driver.
type PublishShipmentCommandHandler struct {
	uowFactory    ShipmentUoWFactory
	identityStore ports.IdentityStore
	sink          ports.NotificationSink
	logger        *slog.Logger
}

// NewPublishShipmentCommandHandler creates a handler for publishing drafts.
func NewPublishShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	identityStore ports.IdentityStore,
	sink ports.NotificationSink,
	logger *slog.Logger,
) PublishShipmentCommandHandler {
	return PublishShipmentCommandHandler{
		uowFactory:    uowFactory,
		identityStore: identityStore,
		sink:          sink,
		logger:        logger,
	}
}

// Handle moves the shipment to bidding and notifies verified drivers after
// the transaction commits. Fan-out failures never undo the publish.
func (h *PublishShipmentCommandHandler) Handle(ctx context.Context, cmd PublishShipmentCommand) error {
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
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can publish it")
	}

	if err = aggregate.Publish(); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.fanOut(ctx, aggregate.ID(), aggregate.Details().ItemDescription)
	return nil
}

func (h *PublishShipmentCommandHandler) fanOut(ctx context.Context, shipmentID kernel.UUID, description string) {
	drivers, err := h.identityStore.ListVerifiedDrivers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "new-shipment fan-out skipped",
			slog.String("shipment_id", shipmentID.String()),
			slog.Any("error", err),
		)
		return
	}

	for _, driver := range drivers {
		notify(ctx, h.sink, h.logger, ports.Notification{
			RecipientID: driver.ID(),
			Kind:        ports.NotificationNewShipment,
			Message:     fmt.Sprintf("New shipment open for bidding: %s", description),
			Data: map[string]any{
				"shipment_id": shipmentID.String(),
			},
		})
	}
}
