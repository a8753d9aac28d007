// Package shipmentrepo persists shipment aggregates. Statuses, urgency, and
// string lists are stored in their wire representation so the read side can
// query them without a mapping table.
package shipmentrepo

import (
	"strings"
	"time"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the database representation of a shipment aggregate.
// Version backs the optimistic concurrency predicate in Update.
type ShipmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Status     string    `gorm:"index"`

	Pickup  LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`

	ReceiverName  string
	ReceiverPhone string

	VehicleRequirements string
	ItemDescription     string
	WeightKg            float64
	Urgency             string
	ShipmentDate        *time.Time

	Photos        string
	AcceptedBidID *uuid.UUID `gorm:"type:uuid"`

	DeliveryPhotos string
	DeliveredAt    *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
	Version   int64
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// LocationDTO is an embedded coordinate pair with its human-readable
// address.
type LocationDTO struct {
	Longitude float64
	Latitude  float64
	Address   string
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	details := aggregate.Details()

	var acceptedBidID *uuid.UUID
	if id := aggregate.AcceptedBidID(); id != nil {
		raw := id.Bytes()
		acceptedBidID = &raw
	}

	var deliveryPhotos string
	var deliveredAt *time.Time
	if confirmation := aggregate.DeliveryConfirmation(); confirmation != nil {
		deliveryPhotos = joinList(confirmation.Photos())
		at := confirmation.ConfirmedAt()
		deliveredAt = &at
	}

	requirements := make([]string, 0, len(details.VehicleRequirements))
	for _, vt := range details.VehicleRequirements {
		requirements = append(requirements, vt.String())
	}

	return ShipmentDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Status:     aggregate.Status().String(),
		Pickup: LocationDTO{
			Longitude: details.Pickup.Longitude(),
			Latitude:  details.Pickup.Latitude(),
			Address:   details.Pickup.Address(),
		},
		Dropoff: LocationDTO{
			Longitude: details.Dropoff.Longitude(),
			Latitude:  details.Dropoff.Latitude(),
			Address:   details.Dropoff.Address(),
		},
		ReceiverName:        details.Receiver.Name(),
		ReceiverPhone:       details.Receiver.Phone(),
		VehicleRequirements: joinList(requirements),
		ItemDescription:     details.ItemDescription,
		WeightKg:            details.WeightKg,
		Urgency:             details.Urgency.String(),
		ShipmentDate:        details.ShipmentDate,
		Photos:              joinList(aggregate.Photos()),
		AcceptedBidID:       acceptedBidID,
		DeliveryPhotos:      deliveryPhotos,
		DeliveredAt:         deliveredAt,
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Version:             aggregate.Version(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	urgency, err := shipment.UrgencyFromString(dto.Urgency)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.Pickup.Longitude, dto.Pickup.Latitude, dto.Pickup.Address)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewLocation(dto.Dropoff.Longitude, dto.Dropoff.Latitude, dto.Dropoff.Address)
	if err != nil {
		return nil, err
	}
	receiver, err := shipment.NewReceiverInfo(dto.ReceiverName, dto.ReceiverPhone)
	if err != nil {
		return nil, err
	}

	requirementNames := splitList(dto.VehicleRequirements)
	requirements := make([]identity.VehicleType, 0, len(requirementNames))
	for _, name := range requirementNames {
		vt, vtErr := identity.VehicleTypeFromString(name)
		if vtErr != nil {
			return nil, vtErr
		}
		requirements = append(requirements, vt)
	}

	var acceptedBidID *kernel.UUID
	if dto.AcceptedBidID != nil {
		bidID, bidErr := kernel.UUIDFromBytes((*dto.AcceptedBidID)[:])
		if bidErr != nil {
			return nil, bidErr
		}
		acceptedBidID = &bidID
	}

	var confirmation *shipment.DeliveryConfirmation
	if dto.DeliveredAt != nil {
		c, confErr := shipment.NewDeliveryConfirmation(splitList(dto.DeliveryPhotos), *dto.DeliveredAt)
		if confErr != nil {
			return nil, confErr
		}
		confirmation = &c
	}

	return shipment.RestoreShipment(
		id, customerID,
		shipment.Details{
			Pickup:              pickup,
			Dropoff:             dropoff,
			Receiver:            receiver,
			VehicleRequirements: requirements,
			ItemDescription:     dto.ItemDescription,
			WeightKg:            dto.WeightKg,
			Urgency:             urgency,
			ShipmentDate:        dto.ShipmentDate,
		},
		status,
		splitList(dto.Photos),
		acceptedBidID,
		confirmation,
		dto.CreatedAt, dto.UpdatedAt,
		dto.Version,
	)
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}

func splitList(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
