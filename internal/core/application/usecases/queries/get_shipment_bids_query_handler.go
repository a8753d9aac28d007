package queries

import (
	"context"
	"database/sql"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentBidsQueryHandler lists the bids on a shipment, scoped by
// actor: the owner sees everything, a driver sees their own entry, and
// any other customer is refused.
type GetShipmentBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentBidsQueryHandler creates a handler for shipment bid
// listings.
func NewGetShipmentBidsQueryHandler(db *gorm.DB) GetShipmentBidsQueryHandler {
	return GetShipmentBidsQueryHandler{db: db}
}

// Handle returns the visible slice of the ledger, newest first. Driver
// names are joined in from the user directory.
func (h GetShipmentBidsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentBidsQuery,
) ([]BidResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var ownerID uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT customer_id FROM shipments WHERE id = ?
	`, query.ShipmentID().Bytes()).Scan(&ownerID).Error
	if err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	isOwner := ownerID == query.ActorID().Bytes()
	if !isOwner && query.ActorRole() != identity.RoleDriver {
		return nil, errs.NewForbiddenError(
			query.ActorID().String(), "only the shipment owner can view its bids")
	}

	sqlText := `
		SELECT b.id, b.shipment_id, b.driver_id, COALESCE(u.name, ''), b.amount, b.status, b.bid_time
		FROM bids b
		LEFT JOIN users u ON u.id = b.driver_id
		WHERE b.shipment_id = ?
	`
	args := []any{query.ShipmentID().Bytes()}
	if !isOwner {
		sqlText += ` AND b.driver_id = ?`
		args = append(args, query.ActorID().Bytes())
	}
	sqlText += ` ORDER BY b.bid_time DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBidRows(rows)
}

func collectBidRows(rows *sql.Rows) ([]BidResponse, error) {
	bids := make([]BidResponse, 0)
	for rows.Next() {
		var (
			response   BidResponse
			id         uuid.UUID
			shipmentID uuid.UUID
			driverID   uuid.UUID
		)
		if err := rows.Scan(
			&id,
			&shipmentID,
			&driverID,
			&response.DriverName,
			&response.Amount,
			&response.Status,
			&response.BidTime,
		); err != nil {
			return nil, err
		}

		bidID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		response.ID = bidID

		sID, err := kernel.UUIDFromBytes(shipmentID[:])
		if err != nil {
			return nil, err
		}
		response.ShipmentID = sID

		dID, err := kernel.UUIDFromBytes(driverID[:])
		if err != nil {
			return nil, err
		}
		response.DriverID = dID

		bids = append(bids, response)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
