package shipment

import (
	"errors"
	"time"

	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

// ErrReceiverInfoIsNotConstructed is returned when validating a zero-value ReceiverInfo.
var ErrReceiverInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"receiver info must be created via NewReceiverInfo constructor")

// ReceiverInfo identifies the person accepting the delivery at the dropoff
// location. Immutable value object.
type ReceiverInfo struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewReceiverInfo creates receiver details with non-empty name and phone.
func NewReceiverInfo(name, phone string) (ReceiverInfo, error) {
	r := ReceiverInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(r.setName(name), r.setPhone(phone)); err != nil {
		return ReceiverInfo{}, err
	}

	return r, nil
}

// Validate checks that the ReceiverInfo was created through NewReceiverInfo.
func (r ReceiverInfo) Validate() error {
	return r.guard.Validate(ErrReceiverInfoIsNotConstructed)
}

// Name returns the receiver's name.
func (r ReceiverInfo) Name() string {
	return r.name
}

// Phone returns the receiver's phone number.
func (r ReceiverInfo) Phone() string {
	return r.phone
}

func (r *ReceiverInfo) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("receiver name")
	}
	r.name = name
	return nil
}

func (r *ReceiverInfo) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("receiver phone")
	}
	r.phone = phone
	return nil
}

// DeliveryConfirmation records proof of delivery: photos taken at handover
// and the moment it happened.
type DeliveryConfirmation struct {
	photos      []string
	confirmedAt time.Time
}

// NewDeliveryConfirmation creates a confirmation record. The timestamp is
// required; photos are optional.
func NewDeliveryConfirmation(photos []string, confirmedAt time.Time) (DeliveryConfirmation, error) {
	if confirmedAt.IsZero() {
		return DeliveryConfirmation{}, errs.NewValueIsRequiredError("confirmation time")
	}

	return DeliveryConfirmation{
		photos:      append([]string(nil), photos...),
		confirmedAt: confirmedAt,
	}, nil
}

// Photos returns a copy of the handover photo URLs.
func (d DeliveryConfirmation) Photos() []string {
	return append([]string(nil), d.photos...)
}

// ConfirmedAt returns when the delivery was confirmed.
func (d DeliveryConfirmation) ConfirmedAt() time.Time {
	return d.confirmedAt
}
