package commands

import (
	"context"
	"fmt"
	"log/slog"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// SubmitBidCommandHandler places a driver's bid on a bidding shipment.
//
// Eligibility is checked in order: the actor must be a verified driver, the
// shipment must be accepting bids, the driver's vehicle must match the
// shipment's requirements, and the driver must not have bid already. The
// last check is ultimately enforced by the ledger's unique constraint, so
// two concurrent submissions cannot both land.
type SubmitBidCommandHandler struct {
	uowFactory    MarketUoWFactory
	identityStore ports.IdentityStore
	sink          ports.NotificationSink
	logger        *slog.Logger
}

// NewSubmitBidCommandHandler creates a handler for bid submission.
func NewSubmitBidCommandHandler(
	uowFactory MarketUoWFactory,
	identityStore ports.IdentityStore,
	sink ports.NotificationSink,
	logger *slog.Logger,
) SubmitBidCommandHandler {
	return SubmitBidCommandHandler{
		uowFactory:    uowFactory,
		identityStore: identityStore,
		sink:          sink,
		logger:        logger,
	}
}

// Handle verifies driver eligibility, records the bid, and notifies the
// shipment's customer after commit.
func (h *SubmitBidCommandHandler) Handle(ctx context.Context, cmd SubmitBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	driver, err := h.identityStore.FindByID(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if driver.Role() != identity.RoleDriver {
		return errs.NewForbiddenError(cmd.DriverID().String(), "only drivers can bid")
	}
	if !driver.IsVerifiedDriver() {
		return errs.NewForbiddenError(cmd.DriverID().String(), "driver is not verified")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if target.Status() != shipment.StatusBidding {
		return errs.NewShipmentNotBiddableError(target.ID().String(), target.Status().String())
	}
	if err = checkVehicleMatch(driver, target); err != nil {
		return err
	}

	offer, err := bid.NewBid(cmd.BidID(), cmd.ShipmentID(), cmd.DriverID(), cmd.Amount())
	if err != nil {
		return err
	}
	if err = uow.BidRepository().Add(ctx, offer); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notify(ctx, h.sink, h.logger, ports.Notification{
		RecipientID: target.CustomerID(),
		Kind:        ports.NotificationNewBid,
		Message:     fmt.Sprintf("%s bid %.2f ETB on your shipment", driver.Name(), cmd.Amount()),
		Data: map[string]any{
			"shipment_id": cmd.ShipmentID().String(),
			"bid_id":      cmd.BidID().String(),
			"amount":      cmd.Amount(),
		},
	})
	return nil
}

func checkVehicleMatch(driver *identity.User, target *shipment.Shipment) error {
	required := target.Details().VehicleRequirements
	if len(required) == 0 {
		return nil
	}

	// A driver without a declared vehicle is not constrained by requirements.
	vt := driver.VehicleType()
	if vt == nil {
		return nil
	}

	if !vt.Matches(required) {
		requiredNames := make([]string, 0, len(required))
		for _, r := range required {
			requiredNames = append(requiredNames, r.String())
		}
		return errs.NewVehicleMismatchError(vt.String(), requiredNames)
	}
	return nil
}
