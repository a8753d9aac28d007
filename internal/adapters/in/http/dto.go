package http

import (
	"time"

	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
)

type locationRequest struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Address   string  `json:"address"`
}

type receiverRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type createShipmentRequest struct {
	Pickup              locationRequest `json:"pickup"`
	Dropoff             locationRequest `json:"dropoff"`
	Receiver            receiverRequest `json:"receiver"`
	VehicleRequirements []string        `json:"vehicle_requirements"`
	ItemDescription     string          `json:"item_description"`
	WeightKg            float64         `json:"weight_kg"`
	Urgency             string          `json:"urgency"`
	ShipmentDate        *time.Time      `json:"shipment_date"`
}

// updateShipmentRequest carries a partial edit; absent fields leave the
// draft unchanged.
type updateShipmentRequest struct {
	Pickup              *locationRequest `json:"pickup"`
	Dropoff             *locationRequest `json:"dropoff"`
	Receiver            *receiverRequest `json:"receiver"`
	VehicleRequirements *[]string        `json:"vehicle_requirements"`
	ItemDescription     *string          `json:"item_description"`
	WeightKg            *float64         `json:"weight_kg"`
	Urgency             *string          `json:"urgency"`
	ShipmentDate        *time.Time       `json:"shipment_date"`
}

type submitBidRequest struct {
	Amount float64 `json:"amount"`
}

type initiatePaymentRequest struct {
	Method string `json:"method"`
}

type paymentCallbackRequest struct {
	PaymentID   string `json:"payment_id"`
	ProviderRef string `json:"provider_ref"`
	Succeeded   bool   `json:"succeeded"`
}

type confirmDeliveryRequest struct {
	PhotoURLs []string `json:"photo_urls"`
}

type idResponse struct {
	ID string `json:"id"`
}

type locationResponse struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Address   string  `json:"address"`
}

type shipmentResponse struct {
	ID                  string           `json:"id"`
	CustomerID          string           `json:"customer_id"`
	Status              string           `json:"status"`
	Pickup              locationResponse `json:"pickup"`
	Dropoff             locationResponse `json:"dropoff"`
	ReceiverName        string           `json:"receiver_name"`
	ReceiverPhone       string           `json:"receiver_phone"`
	VehicleRequirements []string         `json:"vehicle_requirements"`
	ItemDescription     string           `json:"item_description"`
	WeightKg            float64          `json:"weight_kg"`
	Urgency             string           `json:"urgency"`
	ShipmentDate        *time.Time       `json:"shipment_date,omitempty"`
	Photos              []string         `json:"photos"`
	AcceptedBidID       *string          `json:"accepted_bid_id,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type bidResponse struct {
	ID         string    `json:"id"`
	ShipmentID string    `json:"shipment_id"`
	DriverID   string    `json:"driver_id"`
	DriverName string    `json:"driver_name,omitempty"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	BidTime    time.Time `json:"bid_time"`
}

type paymentStatusResponse struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r createShipmentRequest) toDetails() (shipment.Details, error) {
	pickup, err := kernel.NewLocation(r.Pickup.Longitude, r.Pickup.Latitude, r.Pickup.Address)
	if err != nil {
		return shipment.Details{}, err
	}
	dropoff, err := kernel.NewLocation(r.Dropoff.Longitude, r.Dropoff.Latitude, r.Dropoff.Address)
	if err != nil {
		return shipment.Details{}, err
	}
	receiver, err := shipment.NewReceiverInfo(r.Receiver.Name, r.Receiver.Phone)
	if err != nil {
		return shipment.Details{}, err
	}
	urgency, err := shipment.UrgencyFromString(r.Urgency)
	if err != nil {
		return shipment.Details{}, err
	}
	requirements, err := parseVehicleTypes(r.VehicleRequirements)
	if err != nil {
		return shipment.Details{}, err
	}

	return shipment.Details{
		Pickup:              pickup,
		Dropoff:             dropoff,
		Receiver:            receiver,
		VehicleRequirements: requirements,
		ItemDescription:     r.ItemDescription,
		WeightKg:            r.WeightKg,
		Urgency:             urgency,
		ShipmentDate:        r.ShipmentDate,
	}, nil
}

func (r updateShipmentRequest) toPatch() (shipment.Patch, error) {
	var patch shipment.Patch

	if r.Pickup != nil {
		pickup, err := kernel.NewLocation(r.Pickup.Longitude, r.Pickup.Latitude, r.Pickup.Address)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.Pickup = &pickup
	}
	if r.Dropoff != nil {
		dropoff, err := kernel.NewLocation(r.Dropoff.Longitude, r.Dropoff.Latitude, r.Dropoff.Address)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.Dropoff = &dropoff
	}
	if r.Receiver != nil {
		receiver, err := shipment.NewReceiverInfo(r.Receiver.Name, r.Receiver.Phone)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.Receiver = &receiver
	}
	if r.VehicleRequirements != nil {
		requirements, err := parseVehicleTypes(*r.VehicleRequirements)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.VehicleRequirements = &requirements
	}
	if r.Urgency != nil {
		urgency, err := shipment.UrgencyFromString(*r.Urgency)
		if err != nil {
			return shipment.Patch{}, err
		}
		patch.Urgency = &urgency
	}
	patch.ItemDescription = r.ItemDescription
	patch.WeightKg = r.WeightKg
	patch.ShipmentDate = r.ShipmentDate

	return patch, nil
}

func parseVehicleTypes(names []string) ([]identity.VehicleType, error) {
	types := make([]identity.VehicleType, 0, len(names))
	for _, name := range names {
		vt, err := identity.VehicleTypeFromString(name)
		if err != nil {
			return nil, err
		}
		types = append(types, vt)
	}
	return types, nil
}

func toShipmentResponse(row queries.ShipmentResponse) shipmentResponse {
	response := shipmentResponse{
		ID:         row.ID.String(),
		CustomerID: row.CustomerID.String(),
		Status:     row.Status,
		Pickup: locationResponse{
			Longitude: row.PickupLongitude,
			Latitude:  row.PickupLatitude,
			Address:   row.PickupAddress,
		},
		Dropoff: locationResponse{
			Longitude: row.DropoffLongitude,
			Latitude:  row.DropoffLatitude,
			Address:   row.DropoffAddress,
		},
		ReceiverName:        row.ReceiverName,
		ReceiverPhone:       row.ReceiverPhone,
		VehicleRequirements: row.VehicleRequirements,
		ItemDescription:     row.ItemDescription,
		WeightKg:            row.WeightKg,
		Urgency:             row.Urgency,
		ShipmentDate:        row.ShipmentDate,
		Photos:              row.Photos,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
	if row.AcceptedBidID != nil {
		id := row.AcceptedBidID.String()
		response.AcceptedBidID = &id
	}
	return response
}

func toShipmentResponses(rows []queries.ShipmentResponse) []shipmentResponse {
	responses := make([]shipmentResponse, len(rows))
	for i, row := range rows {
		responses[i] = toShipmentResponse(row)
	}
	return responses
}

func toBidResponses(rows []queries.BidResponse) []bidResponse {
	responses := make([]bidResponse, len(rows))
	for i, row := range rows {
		responses[i] = bidResponse{
			ID:         row.ID.String(),
			ShipmentID: row.ShipmentID.String(),
			DriverID:   row.DriverID.String(),
			DriverName: row.DriverName,
			Amount:     row.Amount,
			Status:     row.Status,
			BidTime:    row.BidTime,
		}
	}
	return responses
}

func toPaymentStatusResponse(row queries.PaymentStatusResponse) paymentStatusResponse {
	return paymentStatusResponse{
		ID:          row.ID.String(),
		ShipmentID:  row.ShipmentID.String(),
		Amount:      row.Amount,
		Method:      row.Method,
		Status:      row.Status,
		ProviderRef: row.ProviderRef,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
