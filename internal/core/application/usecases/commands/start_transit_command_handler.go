package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// StartTransitCommandHandler moves a paid shipment into transit. Only the
// driver behind the accepted bid may do so.
type StartTransitCommandHandler struct {
	uowFactory MarketUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewStartTransitCommandHandler creates a handler for transit start.
func NewStartTransitCommandHandler(
	uowFactory MarketUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) StartTransitCommandHandler {
	return StartTransitCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle verifies the actor is the winning driver, starts transit, and
// notifies the customer after commit.
func (h *StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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
	if err = checkWinningDriver(ctx, uow, aggregate, cmd.ActorID()); err != nil {
		return err
	}

	if err = aggregate.StartTransit(); err != nil {
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
		Message:     "Your shipment is on its way",
		Data: map[string]any{
			"shipment_id": aggregate.ID().String(),
			"status":      shipment.StatusInTransit.String(),
		},
	})
	return nil
}

// checkWinningDriver resolves the accepted bid and confirms actorID is its
// driver. Shipments without an accepted bid fail the check outright.
func checkWinningDriver(ctx context.Context, uow MarketUoW, aggregate *shipment.Shipment, actorID kernel.UUID) error {
	if aggregate.AcceptedBidID() == nil {
		return errs.NewForbiddenError(actorID.String(), "shipment has no accepted bid")
	}

	winner, err := uow.BidRepository().Get(ctx, *aggregate.AcceptedBidID())
	if err != nil {
		return err
	}
	if !winner.DriverID().IsEqual(actorID) {
		return errs.NewForbiddenError(actorID.String(), "only the winning driver can update delivery progress")
	}
	return nil
}
