package shipment

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructor")

// Details groups the customer-editable attributes of a shipment. It is used
// both at creation and when reconstructing from persistence.
type Details struct {
	Pickup              kernel.Location
	Dropoff             kernel.Location
	Receiver            ReceiverInfo
	VehicleRequirements []identity.VehicleType
	ItemDescription     string
	WeightKg            float64
	Urgency             Urgency
	ShipmentDate        *time.Time
}

func (d Details) validate() error {
	if err := errors.Join(
		d.Pickup.Validate(),
		d.Dropoff.Validate(),
		d.Receiver.Validate(),
		d.Urgency.Validate(),
	); err != nil {
		return err
	}
	for _, vt := range d.VehicleRequirements {
		if err := vt.Validate(); err != nil {
			return err
		}
	}
	if d.WeightKg < 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	return nil
}

// Patch describes a partial update to a draft shipment. Nil fields are left
// unchanged. An explicitly empty VehicleRequirements slice clears the
// constraint (any vehicle may bid).
type Patch struct {
	Pickup              *kernel.Location
	Dropoff             *kernel.Location
	Receiver            *ReceiverInfo
	VehicleRequirements *[]identity.VehicleType
	ItemDescription     *string
	WeightKg            *float64
	Urgency             *Urgency
	ShipmentDate        *time.Time
}

// Shipment is the aggregate root of the marketplace. It owns the lifecycle
// status, the customer-editable delivery details, and the link to the
// accepted bid.
//
// Invariants:
//   - acceptedBidID is non-nil exactly when status is at or past Accepted
//     (Accepted, Paid, InTransit, Delivered)
//   - details and photos are mutable only while the shipment is a Draft
//   - updatedAt never moves backwards; every mutation refreshes it
//   - version increases by one per persisted mutation (optimistic concurrency)
type Shipment struct {
	id         kernel.UUID
	customerID kernel.UUID
	status     Status
	details    Details

	photos               []string
	acceptedBidID        *kernel.UUID
	deliveryConfirmation *DeliveryConfirmation

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewShipment creates a shipment in Draft status owned by customerID.
// Role checks on the caller belong to the application layer; the aggregate
// only enforces structural validity.
func NewShipment(id, customerID kernel.UUID, details Details) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		details.validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Shipment{
		id:            id,
		customerID:    customerID,
		status:        StatusDraft,
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence, re-checking the
// accepted-bid invariant so corrupt rows never become live aggregates.
func RestoreShipment(
	id, customerID kernel.UUID,
	details Details,
	status Status,
	photos []string,
	acceptedBidID *kernel.UUID,
	deliveryConfirmation *DeliveryConfirmation,
	createdAt, updatedAt time.Time,
	version int64,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		details.validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := validateAcceptedBid(status, acceptedBidID); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("shipment version")
	}

	return &Shipment{
		id:                   id,
		customerID:           customerID,
		status:               status,
		details:              details,
		photos:               append([]string(nil), photos...),
		acceptedBidID:        acceptedBidID,
		deliveryConfirmation: deliveryConfirmation,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		version:              version,
		isConstructed:        true,
	}, nil
}

func validateAcceptedBid(status Status, acceptedBidID *kernel.UUID) error {
	if status.HasAcceptedBid() && acceptedBidID == nil {
		return errs.NewValueIsRequiredError("accepted bid id")
	}
	if !status.HasAcceptedBid() && acceptedBidID != nil {
		return errs.NewValueIsInvalidError("accepted bid id")
	}
	return nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// CustomerID returns the owning customer's identifier.
func (s *Shipment) CustomerID() kernel.UUID {
	return s.customerID
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Details returns the customer-editable attributes.
func (s *Shipment) Details() Details {
	return s.details
}

// Photos returns a copy of the shipment photo URLs in upload order.
func (s *Shipment) Photos() []string {
	return append([]string(nil), s.photos...)
}

// AcceptedBidID returns the winning bid's id, nil before acceptance.
func (s *Shipment) AcceptedBidID() *kernel.UUID {
	return s.acceptedBidID
}

// DeliveryConfirmation returns the proof of delivery, nil until delivered.
func (s *Shipment) DeliveryConfirmation() *DeliveryConfirmation {
	return s.deliveryConfirmation
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// Version returns the optimistic concurrency version. The repository
// predicates updates on it and bumps it on success.
func (s *Shipment) Version() int64 {
	return s.version
}

// IsOwnedBy reports whether actorID is the shipment's customer.
func (s *Shipment) IsOwnedBy(actorID kernel.UUID) bool {
	return s.customerID.IsEqual(actorID)
}

// Publish makes a draft visible to drivers for bidding.
func (s *Shipment) Publish() error {
	newStatus, err := s.status.Publish()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// ApplyPatch updates details on a draft. Any other status rejects the edit:
// a published shipment's terms are what drivers bid on.
func (s *Shipment) ApplyPatch(patch Patch) error {
	if s.status != StatusDraft {
		return errs.NewInvalidTransitionError("shipment", s.status.String(), "updated draft")
	}

	updated := s.details
	if patch.Pickup != nil {
		updated.Pickup = *patch.Pickup
	}
	if patch.Dropoff != nil {
		updated.Dropoff = *patch.Dropoff
	}
	if patch.Receiver != nil {
		updated.Receiver = *patch.Receiver
	}
	if patch.VehicleRequirements != nil {
		updated.VehicleRequirements = append([]identity.VehicleType(nil), (*patch.VehicleRequirements)...)
	}
	if patch.ItemDescription != nil {
		updated.ItemDescription = *patch.ItemDescription
	}
	if patch.WeightKg != nil {
		updated.WeightKg = *patch.WeightKg
	}
	if patch.Urgency != nil {
		updated.Urgency = *patch.Urgency
	}
	if patch.ShipmentDate != nil {
		updated.ShipmentDate = patch.ShipmentDate
	}

	if err := updated.validate(); err != nil {
		return err
	}

	s.details = updated
	s.touch()
	return nil
}

// AddPhoto appends an uploaded photo URL. Like detail edits, photos are
// frozen once the shipment leaves Draft.
func (s *Shipment) AddPhoto(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("photo url")
	}
	if s.status != StatusDraft {
		return errs.NewInvalidTransitionError("shipment", s.status.String(), "updated draft")
	}

	s.photos = append(s.photos, url)
	s.touch()
	return nil
}

// AcceptBid records the winning bid and moves the shipment to Accepted.
// Called by the bid ledger as part of the atomic accept operation.
func (s *Shipment) AcceptBid(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.AcceptBid()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.acceptedBidID = &bidID
	s.touch()
	return nil
}

// MarkPaid moves an accepted shipment to Paid. Re-applying to an already
// paid shipment is a no-op so duplicated payment callbacks stay harmless.
func (s *Shipment) MarkPaid() error {
	if s.status == StatusPaid {
		return nil
	}

	newStatus, err := s.status.MarkPaid()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// StartTransit moves a paid shipment to InTransit.
func (s *Shipment) StartTransit() error {
	newStatus, err := s.status.StartTransit()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// CompleteDelivery records the proof of delivery and moves to Delivered.
func (s *Shipment) CompleteDelivery(confirmation DeliveryConfirmation) error {
	newStatus, err := s.status.CompleteDelivery()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.deliveryConfirmation = &confirmation
	s.touch()
	return nil
}

// Cancel withdraws the shipment. Permitted only before a bid is accepted.
func (s *Shipment) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

func (s *Shipment) touch() {
	now := time.Now().UTC()
	if !now.After(s.updatedAt) {
		now = s.updatedAt.Add(time.Microsecond)
	}
	s.updatedAt = now
}
