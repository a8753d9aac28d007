package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// CancelShipmentCommandHandler withdraws a shipment and closes out its open
// bids in the same transaction, so no driver is left with a pending bid on
// a dead listing.
type CancelShipmentCommandHandler struct {
	uowFactory MarketUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewCancelShipmentCommandHandler creates a handler for cancellations.
func NewCancelShipmentCommandHandler(
	uowFactory MarketUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle cancels the shipment, rejects its pending bids, and notifies the
// affected drivers after commit.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) error {
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
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can cancel it")
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	pending, err := uow.BidRepository().GetPendingForShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	for _, openBid := range pending {
		if err = openBid.Reject(); err != nil {
			return err
		}
		if err = uow.BidRepository().Update(ctx, openBid); err != nil {
			return err
		}
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyBidders(ctx, pending)
	return nil
}

func (h *CancelShipmentCommandHandler) notifyBidders(ctx context.Context, rejected []*bid.Bid) {
	for _, b := range rejected {
		notify(ctx, h.sink, h.logger, ports.Notification{
			RecipientID: b.DriverID(),
			Kind:        ports.NotificationBidRejected,
			Message:     "The shipment you bid on was cancelled",
			Data: map[string]any{
				"shipment_id": b.ShipmentID().String(),
				"bid_id":      b.ID().String(),
			},
		})
	}
}
