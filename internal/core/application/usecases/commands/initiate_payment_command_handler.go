package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightbid/internal/core/domain/model/payment"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"
)

// InitiatePaymentCommandHandler charges a customer for their accepted
// shipment through the chosen mobile money provider.
//
// The charge amount is always the accepted bid's price. A synchronous
// gateway confirmation lands the transaction success and the shipment's
// paid status in one commit; a gateway that answers "pending" leaves the
// shipment accepted and the transaction open for the callback or the
// reconciliation sweep to close.
type InitiatePaymentCommandHandler struct {
	uowFactory    PaymentUoWFactory
	identityStore ports.IdentityStore
	gateway       ports.PaymentGateway
	sink          ports.NotificationSink
	logger        *slog.Logger
}

// NewInitiatePaymentCommandHandler creates a handler for payment initiation.
func NewInitiatePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	identityStore ports.IdentityStore,
	gateway ports.PaymentGateway,
	sink ports.NotificationSink,
	logger *slog.Logger,
) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory:    uowFactory,
		identityStore: identityStore,
		gateway:       gateway,
		sink:          sink,
		logger:        logger,
	}
}

// Handle creates the transaction, calls the gateway, and applies a
// synchronous result before committing.
func (h *InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	payer, err := h.identityStore.FindByID(ctx, cmd.ActorID())
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
	if !aggregate.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the shipment owner can pay for it")
	}
	if aggregate.Status() != shipment.StatusAccepted {
		return errs.NewInvalidTransitionError("shipment", aggregate.Status().String(), shipment.StatusPaid.String())
	}

	// An open transaction stays the only charge attempt for the shipment
	// until the callback or the reconciliation sweep resolves it.
	latest, err := uow.PaymentRepository().GetLatestForShipment(ctx, cmd.ShipmentID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if latest != nil && latest.Status() == payment.StatusPending {
		return errs.NewInvalidTransitionError(
			"payment", payment.StatusPending.String(), payment.StatusPending.String())
	}

	winner, err := uow.BidRepository().Get(ctx, *aggregate.AcceptedBidID())
	if err != nil {
		return err
	}

	transaction, err := payment.NewTransaction(
		cmd.PaymentID(), cmd.ShipmentID(), cmd.ActorID(),
		winner.Amount(), cmd.Method(),
	)
	if err != nil {
		return err
	}
	if err = uow.PaymentRepository().Add(ctx, transaction); err != nil {
		return err
	}

	result, err := h.gateway.Charge(ctx, cmd.Method(), transaction.Amount(), payer.Phone())
	if err != nil {
		return errs.NewGatewayError(cmd.Method().String(), err)
	}

	if result.Accepted {
		if err = transaction.Succeed(result.ProviderRef); err != nil {
			return err
		}
		if err = aggregate.MarkPaid(); err != nil {
			return err
		}
		if err = uow.PaymentRepository().Update(ctx, transaction); err != nil {
			return err
		}
		if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if result.Accepted {
		notify(ctx, h.sink, h.logger, ports.Notification{
			RecipientID: winner.DriverID(),
			Kind:        ports.NotificationStatusUpdate,
			Message:     "Shipment paid, ready for pickup",
			Data: map[string]any{
				"shipment_id": cmd.ShipmentID().String(),
				"status":      shipment.StatusPaid.String(),
			},
		})
	}
	return nil
}
