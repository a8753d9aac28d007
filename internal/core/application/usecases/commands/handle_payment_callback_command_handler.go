package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/payment"
	"freightbid/internal/core/domain/model/shipment"
	"freightbid/internal/core/ports"
)

// HandlePaymentCallbackCommandHandler applies a provider's settlement
// report to a transaction.
//
// A confirmed charge marks the shipment paid only while it is still in
// accepted status; a redelivered callback finds the transaction already
// terminal and the shipment already paid, and both applications no-op.
type HandlePaymentCallbackCommandHandler struct {
	uowFactory PaymentUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewHandlePaymentCallbackCommandHandler creates a handler for provider
// callbacks.
func NewHandlePaymentCallbackCommandHandler(
	uowFactory PaymentUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) HandlePaymentCallbackCommandHandler {
	return HandlePaymentCallbackCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle applies the callback's terminal status and, on success, flips the
// shipment to paid in the same transaction.
func (h *HandlePaymentCallbackCommandHandler) Handle(ctx context.Context, cmd HandlePaymentCallbackCommand) error {
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

	transaction, err := uow.PaymentRepository().Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	alreadyTerminal := transaction.Status().IsTerminal()
	if cmd.Succeeded() {
		err = transaction.Succeed(cmd.ProviderRef())
	} else {
		err = transaction.Fail(cmd.ProviderRef())
	}
	if err != nil {
		return err
	}

	if alreadyTerminal {
		// Redelivery of a callback we already applied.
		return uow.Commit(ctx)
	}

	if err = uow.PaymentRepository().Update(ctx, transaction); err != nil {
		return err
	}

	var winnerDriverID *kernel.UUID
	if transaction.Status() == payment.StatusSuccess {
		winnerDriverID, err = h.markShipmentPaid(ctx, uow, transaction)
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if winnerDriverID != nil {
		notify(ctx, h.sink, h.logger, ports.Notification{
			RecipientID: *winnerDriverID,
			Kind:        ports.NotificationStatusUpdate,
			Message:     "Shipment paid, ready for pickup",
			Data: map[string]any{
				"shipment_id": transaction.ShipmentID().String(),
				"status":      shipment.StatusPaid.String(),
			},
		})
	}
	return nil
}

// markShipmentPaid flips the shipment to paid and returns the winning
// driver's id for the post-commit notification. A shipment that moved on
// keeps its payment record but its lifecycle stays untouched.
func (h *HandlePaymentCallbackCommandHandler) markShipmentPaid(
	ctx context.Context,
	uow PaymentUoW,
	transaction *payment.Transaction,
) (*kernel.UUID, error) {
	aggregate, err := uow.ShipmentRepository().Get(ctx, transaction.ShipmentID())
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != shipment.StatusAccepted && aggregate.Status() != shipment.StatusPaid {
		h.logger.WarnContext(ctx, "payment settled for shipment outside accepted status",
			slog.String("shipment_id", aggregate.ID().String()),
			slog.String("status", aggregate.Status().String()),
		)
		return nil, nil
	}

	if err = aggregate.MarkPaid(); err != nil {
		return nil, err
	}
	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	winner, err := uow.BidRepository().Get(ctx, *aggregate.AcceptedBidID())
	if err != nil {
		return nil, err
	}
	driverID := winner.DriverID()
	return &driverID, nil
}
