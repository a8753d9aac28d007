package ports

import (
	"context"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/kernel"
)

// BidRepository defines the persistence contract for the bid ledger.
type BidRepository interface {
	// Add persists a new bid. A second bid by the same driver on the same
	// shipment surfaces as errs.ErrDuplicateBid, enforced by a storage
	// unique constraint so concurrent submissions cannot both win.
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update persists a status change to an existing bid.
	Update(ctx context.Context, aggregate *bid.Bid) error

	// Get retrieves a bid by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetForShipment retrieves all bids on a shipment, newest first.
	GetForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*bid.Bid, error)

	// GetPendingForShipment retrieves the still-pending bids on a shipment.
	// Used during acceptance to reject the losing siblings in the same
	// transaction.
	GetPendingForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*bid.Bid, error)
}
