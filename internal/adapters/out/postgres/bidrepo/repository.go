package bidrepo

import (
	"context"
	"errors"

	"freightbid/internal/core/domain/model/bid"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBidRepository implements ports.BidRepository using GORM.
type GormBidRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking written aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBidRepository creates a new GORM bid repository.
func NewGormBidRepository(db *gorm.DB, tracker aggregateTracker) *GormBidRepository {
	return &GormBidRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bid. A second bid by the same driver on the same
// shipment trips the unique index and comes back as errs.ErrDuplicateBid.
func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateBidErrorWithCause(
				aggregate.ShipmentID().String(), aggregate.DriverID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bid.
func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BidDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("bid", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bid by ID.
func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForShipment retrieves all bids on a shipment, newest first.
func (r *GormBidRepository) GetForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*bid.Bid, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("bid_time DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPendingForShipment retrieves the still-pending bids on a shipment.
func (r *GormBidRepository) GetPendingForShipment(ctx context.Context, shipmentID kernel.UUID) ([]*bid.Bid, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ? AND status = ?", shipmentID.Bytes(), bid.StatusPending.String()).
		Order("bid_time DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []BidDTO) ([]*bid.Bid, error) {
	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bids = append(bids, aggregate)
	}
	return bids, nil
}
