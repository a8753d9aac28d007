package bid

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
)

// ErrBidIsNotConstructed is returned when a Bid instance was not created
// through NewBid or RestoreBid.
var ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid constructor")

// Bid is a driver's offer on a shipment. Amount is in ETB and must be
// positive. Status moves from Pending to exactly one of Accepted or
// Rejected and never back.
type Bid struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	driverID   kernel.UUID
	amount     float64
	status     Status
	bidTime    time.Time

	isConstructed bool
}

// NewBid creates a pending bid. Eligibility checks (driver role,
// verification, vehicle match, shipment status) belong to the application
// layer; the aggregate enforces structural validity only.
func NewBid(id, shipmentID, driverID kernel.UUID, amount float64) (*Bid, error) {
	b := &Bid{
		status:        StatusPending,
		bidTime:       time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setShipmentID(shipmentID),
		b.setDriverID(driverID),
		b.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBid reconstructs a bid from persistence.
func RestoreBid(
	id, shipmentID, driverID kernel.UUID,
	amount float64,
	status Status,
	bidTime time.Time,
) (*Bid, error) {
	b := &Bid{
		bidTime:       bidTime,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setShipmentID(shipmentID),
		b.setDriverID(driverID),
		b.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.status = status
	return b, nil
}

// Validate ensures the Bid was created through a constructor.
func (b *Bid) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBidIsNotConstructed
	}
	return nil
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// ShipmentID returns the shipment the bid targets.
func (b *Bid) ShipmentID() kernel.UUID {
	return b.shipmentID
}

// DriverID returns the bidding driver's identifier.
func (b *Bid) DriverID() kernel.UUID {
	return b.driverID
}

// Amount returns the offered price in ETB.
func (b *Bid) Amount() float64 {
	return b.amount
}

// Status returns the current bid status.
func (b *Bid) Status() Status {
	return b.status
}

// BidTime returns when the bid was placed.
func (b *Bid) BidTime() time.Time {
	return b.bidTime
}

// Accept marks the bid as the winner. Only pending bids can be accepted.
func (b *Bid) Accept() error {
	newStatus, err := b.status.Accept()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Reject declines the bid. Only pending bids can be rejected.
func (b *Bid) Reject() error {
	newStatus, err := b.status.Reject()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.shipmentID = id
	return nil
}

func (b *Bid) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.driverID = id
	return nil
}

func (b *Bid) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("bid amount")
	}
	b.amount = amount
	return nil
}
