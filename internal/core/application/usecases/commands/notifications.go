package commands

import (
	"context"
	"log/slog"

	"freightbid/internal/core/ports"
)

// notify delivers a notification after the owning transaction has
// committed. Sink failures are logged and swallowed: a dead notification
// broker must not fail an already-committed business operation.
func notify(ctx context.Context, sink ports.NotificationSink, logger *slog.Logger, n ports.Notification) {
	if sink == nil {
		return
	}
	if err := sink.Send(ctx, n); err != nil {
		logger.WarnContext(ctx, "notification delivery failed",
			slog.String("kind", string(n.Kind)),
			slog.String("recipient_id", n.RecipientID.String()),
			slog.Any("error", err),
		)
	}
}
