package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightbid/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentReconciliationJob periodically sweeps pending payment
// transactions and fails those the provider never confirmed, so customers
// can retry instead of waiting on a charge that will never settle.
type PaymentReconciliationJob struct {
	handler commands.ReconcilePaymentsCommandHandler
	cutoff  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentReconciliationJob creates the sweep job. cutoff is how long a
// transaction may stay pending before it is written off.
func NewPaymentReconciliationJob(
	handler commands.ReconcilePaymentsCommandHandler,
	cutoff time.Duration,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		handler: handler,
		cutoff:  cutoff,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_reconciliation_job"),
	}
}

// Start begins the reconciliation job, running every minute.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReconcilePaymentsCommand(j.cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Payment reconciliation job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reconciliation job stopped")
}
