package notify

import (
	"context"
	"log/slog"

	"freightbid/internal/core/ports"
)

// SlogSink writes notifications to the application log instead of a
// broker. Used in local development and as a fallback when no broker URL
// is configured.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink over the given logger.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// Send logs the notification and always succeeds.
func (s *SlogSink) Send(ctx context.Context, notification ports.Notification) error {
	s.logger.InfoContext(ctx, "notification",
		"recipient_id", notification.RecipientID.String(),
		"kind", string(notification.Kind),
		"message", notification.Message,
	)
	return nil
}
