package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
)

// ConfirmDeliveryCommandHandler records proof of delivery and closes out an
// in-transit shipment.
type ConfirmDeliveryCommandHandler struct {
	uowFactory MarketUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory MarketUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle verifies the actor is the winning driver, records confirmation,
// and notifies the customer after commit.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	confirmation, err := shipment.NewDeliveryConfirmation(cmd.PhotoURLs(), cmd.ConfirmedAt())
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if err = checkWinningDriver(ctx, uow, aggregate, cmd.ActorID()); err != nil {
		return err
	}

	if err = aggregate.CompleteDelivery(confirmation); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.sink, h.logger, ports.Notification{
		RecipientID: aggregate.CustomerID(),
		Kind:        ports.NotificationStatusUpdate,
		Message:     "Your shipment was delivered",
		Data: map[string]any{
			"shipment_id": aggregate.ID().String(),
			"status":      shipment.StatusDelivered.String(),
		},
	})
	return nil
}
