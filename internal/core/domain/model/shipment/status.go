package shipment

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Draft ──publish──> Bidding ──bid accepted──> Accepted ──payment──> Paid
//	  │                   │                                              │
//	  └────cancel────┐    └────cancel────┐                        start transit
//	                 v                   v                               │
//	              Cancelled          Cancelled                           v
//	                                                                InTransit ──delivery confirmed──> Delivered
//
// Delivered and Cancelled are terminal. Cancellation from Accepted or later
// states is intentionally not modelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial status: the customer is still composing the
	// shipment and may freely edit it. Drafts are invisible to drivers.
	StatusDraft

	// StatusBidding means the shipment is published and accepting driver bids.
	StatusBidding

	// StatusAccepted means the customer accepted one bid; payment is awaited.
	StatusAccepted

	// StatusPaid means a payment transaction succeeded for the shipment.
	StatusPaid

	// StatusInTransit means the winning driver picked the item up.
	StatusInTransit

	// StatusDelivered is terminal: delivery was confirmed.
	StatusDelivered

	// StatusCancelled is terminal: the customer withdrew the shipment.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusDraft:     "draft",
		StatusBidding:   "bidding",
		StatusAccepted:  "accepted",
		StatusPaid:      "paid",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "draft",
		StatusBidding:   "bidding",
		StatusAccepted:  "accepted",
		StatusPaid:      "paid",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// HasAcceptedBid reports whether the status implies a non-nil accepted bid.
// This is the shipment/bid consistency invariant: accepted_bid_id is set
// exactly in the states at or after bid acceptance.
func (s Status) HasAcceptedBid() bool {
	switch s {
	case StatusAccepted, StatusPaid, StatusInTransit, StatusDelivered:
		return true
	default:
		return false
	}
}

// Publish transitions Draft -> Bidding.
func (s Status) Publish() (Status, error) {
	if s != StatusDraft {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), StatusBidding.String())
	}
	return StatusBidding, nil
}

// AcceptBid transitions Bidding -> Accepted. Invoked by the bid ledger when
// the customer accepts a bid; any other starting state is an invalid transition.
func (s Status) AcceptBid() (Status, error) {
	if s != StatusBidding {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// MarkPaid transitions Accepted -> Paid.
func (s Status) MarkPaid() (Status, error) {
	if s != StatusAccepted {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), StatusPaid.String())
	}
	return StatusPaid, nil
}

// StartTransit transitions Paid -> InTransit.
func (s Status) StartTransit() (Status, error) {
	if s != StatusPaid {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), StatusInTransit.String())
	}
	return StatusInTransit, nil
}

// CompleteDelivery transitions InTransit -> Delivered.
func (s Status) CompleteDelivery() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions Draft or Bidding -> Cancelled. Cancellation after a bid
// has been accepted would require refund handling and is not supported.
func (s Status) Cancel() (Status, error) {
	if s != StatusDraft && s != StatusBidding {
		return 0, errs.NewInvalidTransitionError("shipment", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
