package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"freightbid/internal/core/domain/model/payment"
	"freightbid/internal/core/ports"
)

// ReconcilePaymentsCommandHandler fails pending payment transactions whose
// provider never confirmed within the cutoff. Runs from the reconciliation
// job; customers whose payment expired are notified so they can retry.
type ReconcilePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	sink       ports.NotificationSink
	logger     *slog.Logger
	now        func() time.Time
}

// NewReconcilePaymentsCommandHandler creates a handler for the sweep.
func NewReconcilePaymentsCommandHandler(
	uowFactory PaymentUoWFactory,
	sink ports.NotificationSink,
	logger *slog.Logger,
) ReconcilePaymentsCommandHandler {
	return ReconcilePaymentsCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
		now:        time.Now,
	}
}

// Handle fails every pending transaction older than the cutoff in one
// transaction and notifies the affected customers after commit.
func (h *ReconcilePaymentsCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentsCommand) error {
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

	pending, err := uow.PaymentRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	now := h.now()
	var expired []*payment.Transaction
	for _, tx := range pending {
		if tx.Age(now) < cmd.Cutoff() {
			continue
		}
		if err = tx.Fail(fmt.Sprintf("expired:%s", tx.ID())); err != nil {
			return err
		}
		if err = uow.PaymentRepository().Update(ctx, tx); err != nil {
			return err
		}
		expired = append(expired, tx)
	}

	if len(expired) == 0 {
		_ = uow.Rollback(ctx)
		return nil
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "expired pending payments", "count", len(expired))

	for _, tx := range expired {
		notify(ctx, h.sink, h.logger, ports.Notification{
			RecipientID: tx.CustomerID(),
			Kind:        ports.NotificationStatusUpdate,
			Message:     "Your payment was not confirmed in time, please try again",
			Data: map[string]any{
				"shipment_id": tx.ShipmentID().String(),
				"payment_id":  tx.ID().String(),
			},
		})
	}

	return nil
}
