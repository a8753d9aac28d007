package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// AcceptBidCommandHandler selects the winning bid on a shipment.
//
// Acceptance is atomic: the winning bid flips to accepted, every other
// pending bid flips to rejected, and the shipment records the winner, all
// in one transaction. The shipment update is version-predicated, so when
// two acceptances race only one commit lands; the loser surfaces
// errs.ErrVersionIsInvalid and no bid ends up half-accepted.
type AcceptBidCommandHandler struct {
	uowFactory MarketUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewAcceptBidCommandHandler creates a handler for bid acceptance.
func NewAcceptBidCommandHandler(
	uowFactory MarketUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle accepts the bid, rejects its siblings, and notifies winner and
// losers after commit.
func (h *AcceptBidCommandHandler) Handle(ctx context.Context, cmd AcceptBidCommand) error {
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
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can accept bids")
	}

	winner, err := uow.BidRepository().Get(ctx, cmd.BidID())
	if err != nil {
		return err
	}
	if !winner.ShipmentID().IsEqual(cmd.ShipmentID()) {
		return errs.NewValueIsInvalidError("bid id")
	}

	losers, err := uow.BidRepository().GetPendingForShipment(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = winner.Accept(); err != nil {
		return err
	}
	if err = aggregate.AcceptBid(winner.ID()); err != nil {
		return err
	}

	if err = uow.BidRepository().Update(ctx, winner); err != nil {
		return err
	}
	rejected := make([]*bid.Bid, 0, len(losers))
	for _, loser := range losers {
		if loser.ID().IsEqual(winner.ID()) {
			continue
		}
		if err = loser.Reject(); err != nil {
			return err
		}
		if err = uow.BidRepository().Update(ctx, loser); err != nil {
			return err
		}
		rejected = append(rejected, loser)
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.sink, h.logger, ports.Notification{
		RecipientID: winner.DriverID(),
		Kind:        ports.NotificationBidAccepted,
		Message:     "Your bid was accepted",
		Data: map[string]any{
			"shipment_id": cmd.ShipmentID().String(),
			"bid_id":      winner.ID().String(),
			"amount":      winner.Amount(),
		},
	})
	for _, loser := range rejected {
		notify(ctx, h.sink, h.logger, ports.Notification{
			RecipientID: loser.DriverID(),
			Kind:        ports.NotificationBidRejected,
			Message:     "Your bid was not selected",
			Data: map[string]any{
				"shipment_id": cmd.ShipmentID().String(),
				"bid_id":      loser.ID().String(),
			},
		})
	}
	return nil
}
