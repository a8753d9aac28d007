package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverBidsQueryHandler lists a driver's bid history.
type GetDriverBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverBidsQueryHandler creates a handler for driver bid history.
func NewGetDriverBidsQueryHandler(db *gorm.DB) GetDriverBidsQueryHandler {
	return GetDriverBidsQueryHandler{db: db}
}

// Handle returns all bids placed by the driver, newest first.
func (h GetDriverBidsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverBidsQuery,
) ([]BidResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT b.id, b.shipment_id, b.driver_id, COALESCE(u.name, ''), b.amount, b.status, b.bid_time
		FROM bids b
		LEFT JOIN users u ON u.id = b.driver_id
		WHERE b.driver_id = ?
		ORDER BY b.bid_time DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBidRows(rows)
}
