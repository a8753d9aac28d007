package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomerShipmentsQueryHandler lists a customer's shipments, newest
// first.
type GetCustomerShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerShipmentsQueryHandler creates a handler for customer
// shipment listings.
func NewGetCustomerShipmentsQueryHandler(db *gorm.DB) GetCustomerShipmentsQueryHandler {
	return GetCustomerShipmentsQueryHandler{db: db}
}

// Handle returns all shipments owned by the customer.
func (h GetCustomerShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+shipmentSelectColumns+`
		FROM shipments
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
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
