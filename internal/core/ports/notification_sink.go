package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
)

// NotificationKind names the event a notification describes.
type NotificationKind string

const (
	// NotificationNewShipment tells a driver a shipment opened for bidding.
	NotificationNewShipment NotificationKind = "new_shipment"

	// NotificationNewBid tells a customer a driver bid on their shipment.
	NotificationNewBid NotificationKind = "new_bid"

	// NotificationBidAccepted tells a driver their bid won.
	NotificationBidAccepted NotificationKind = "bid_accepted"

	// NotificationBidRejected tells a driver their bid lost.
	NotificationBidRejected NotificationKind = "bid_rejected"

	// NotificationStatusUpdate tells a customer their shipment moved
	// through the delivery lifecycle.
	NotificationStatusUpdate NotificationKind = "status_update"
)

// Notification is a message addressed to a single user. Data carries
// kind-specific fields (shipment id, bid amount, new status) for the
// client to render.
type Notification struct {
	RecipientID kernel.UUID
	Kind        NotificationKind
	Message     string
	Data        map[string]any
}

// NotificationSink delivers notifications to users. Delivery is best
// effort: use cases fire notifications after their transaction commits and
// tolerate sink failures.
type NotificationSink interface {
	Send(ctx context.Context, notification Notification) error
}
