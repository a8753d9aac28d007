package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// RejectBidCommandHandler declines a single bid. The shipment stays in
// bidding; only the targeted bid changes.
type RejectBidCommandHandler struct {
	uowFactory MarketUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewRejectBidCommandHandler creates a handler for bid rejection.
func NewRejectBidCommandHandler(
	uowFactory MarketUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) RejectBidCommandHandler {
	return RejectBidCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle rejects the bid and notifies its driver after commit.
func (h *RejectBidCommandHandler) Handle(ctx context.Context, cmd RejectBidCommand) error {
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

	declined, err := uow.BidRepository().Get(ctx, cmd.BidID())
	if err != nil {
		return err
	}

	aggregate, err := uow.ShipmentRepository().Get(ctx, declined.ShipmentID())
	if err != nil {
		return err
	}
	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can reject bids")
	}

	if err = declined.Reject(); err != nil {
		return err
	}
	if err = uow.BidRepository().Update(ctx, declined); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.sink, h.logger, ports.Notification{
		RecipientID: declined.DriverID(),
		Kind:        ports.NotificationBidRejected,
		Message:     "Your bid was declined",
		Data: map[string]any{
			"shipment_id": declined.ShipmentID().String(),
			"bid_id":      declined.ID().String(),
		},
	})
	return nil
}
