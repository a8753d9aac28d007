// Package queries contains the read side of the marketplace. Handlers run
// raw SQL against the read connection and return flat response models; they
// never load aggregates.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"freightbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ShipmentResponse is the flat read model of a shipment row.
type ShipmentResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	Status              string
	PickupAddress       string
	PickupLongitude     float64
	PickupLatitude      float64
	DropoffAddress      string
	DropoffLongitude    float64
	DropoffLatitude     float64
	ReceiverName        string
	ReceiverPhone       string
	VehicleRequirements []string
	ItemDescription     string
	WeightKg            float64
	Urgency             string
	ShipmentDate        *time.Time
	Photos              []string
	AcceptedBidID       *kernel.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

const shipmentSelectColumns = `
	id,
	customer_id,
	status,
	pickup_address,
	pickup_longitude,
	pickup_latitude,
	dropoff_address,
	dropoff_longitude,
	dropoff_latitude,
	receiver_name,
	receiver_phone,
	vehicle_requirements,
	item_description,
	weight_kg,
	urgency,
	shipment_date,
	photos,
	accepted_bid_id,
	created_at,
	updated_at
`

func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var (
		response      ShipmentResponse
		id            uuid.UUID
		customerID    uuid.UUID
		requirements  string
		photos        string
		acceptedBidID uuid.NullUUID
	)

	if err := rows.Scan(
		&id,
		&customerID,
		&response.Status,
		&response.PickupAddress,
		&response.PickupLongitude,
		&response.PickupLatitude,
		&response.DropoffAddress,
		&response.DropoffLongitude,
		&response.DropoffLatitude,
		&response.ReceiverName,
		&response.ReceiverPhone,
		&requirements,
		&response.ItemDescription,
		&response.WeightKg,
		&response.Urgency,
		&response.ShipmentDate,
		&photos,
		&acceptedBidID,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	response.ID = shipmentID

	owner, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	response.CustomerID = owner

	response.VehicleRequirements = splitList(requirements)
	response.Photos = splitList(photos)

	if acceptedBidID.Valid {
		winner, idErr := kernel.UUIDFromBytes(acceptedBidID.UUID[:])
		if idErr != nil {
			return ShipmentResponse{}, idErr
		}
		response.AcceptedBidID = &winner
	}

	return response, nil
}

// splitList decodes the comma-joined text columns used for string lists.
func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
