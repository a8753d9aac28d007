// Package bidrepo implements the bid repository using GORM and PostgreSQL.
//
// The bids table carries a unique index on (shipment_id, driver_id) so
// the one-bid-per-driver rule holds under concurrent submissions; the
// repository translates the resulting duplicate key error into
// errs.ErrDuplicateBid.
package bidrepo

import (
	"time"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BidDTO represents the database model for bids.
type BidDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index:idx_bids_shipment_driver,unique"`
	DriverID   uuid.UUID `gorm:"type:uuid;index:idx_bids_shipment_driver,unique"`
	Amount     float64
	Status     string `gorm:"index"`
	BidTime    time.Time
}

// TableName returns the table name for GORM.
func (BidDTO) TableName() string {
	return "bids"
}

func fromDomain(aggregate *bid.Bid) BidDTO {
	return BidDTO{
		ID:         aggregate.ID().Bytes(),
		ShipmentID: aggregate.ShipmentID().Bytes(),
		DriverID:   aggregate.DriverID().Bytes(),
		Amount:     aggregate.Amount(),
		Status:     aggregate.Status().String(),
		BidTime:    aggregate.BidTime(),
	}
}

func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	status, err := bid.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, shipmentID, driverID, dto.Amount, status, dto.BidTime)
}
