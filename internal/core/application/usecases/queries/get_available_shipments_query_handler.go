package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableShipmentsQueryHandler lists the bidding board for drivers.
type GetAvailableShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableShipmentsQueryHandler creates a handler for the bidding
// board.
func NewGetAvailableShipmentsQueryHandler(db *gorm.DB) GetAvailableShipmentsQueryHandler {
	return GetAvailableShipmentsQueryHandler{db: db}
}

// Handle returns shipments in bidding status. With a vehicle filter, only
// shipments whose requirement list is empty or contains the type are
// returned.
func (h GetAvailableShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + shipmentSelectColumns + `
		FROM shipments
		WHERE status = 'bidding'
	`
	args := make([]any, 0, 1)
	if vt := query.VehicleType(); vt != nil {
		// Requirements are stored as a comma-joined list; an empty list
		// places no constraint.
		sql += ` AND (vehicle_requirements = '' OR (',' || vehicle_requirements || ',') LIKE ?)`
		args = append(args, "%,"+vt.String()+",%")
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		response, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
