package queries

import (
	"context"

	"freightbid/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves a single shipment row.
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment reads.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns the shipment when the actor owns it or has bid on it.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentSelectColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	response, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentResponse{}, err
	}

	if !response.CustomerID.IsEqual(query.ActorID()) {
		hasBid, bidErr := h.actorHasBid(ctx, query)
		if bidErr != nil {
			return ShipmentResponse{}, bidErr
		}
		if !hasBid {
			return ShipmentResponse{}, errs.NewForbiddenError(
				query.ActorID().String(), "shipment is not visible to this user")
		}
	}

	return response, nil
}

func (h GetShipmentQueryHandler) actorHasBid(ctx context.Context, query GetShipmentQuery) (bool, error) {
	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(1) FROM bids
		WHERE shipment_id = ? AND driver_id = ?
	`, query.ShipmentID().Bytes(), query.ActorID().Bytes()).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
