package bid

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the lifecycle state of a bid.
//
// State transitions:
//
//	Pending ──accept──> Accepted
//	   │
//	   └────reject────> Rejected
//
// Accepted and Rejected are terminal. A bid never returns to Pending.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status at submission.
	StatusPending

	// StatusAccepted means the customer selected this bid. At most one bid
	// per shipment ever reaches this status.
	StatusAccepted

	// StatusRejected means the customer declined this bid, either explicitly
	// or because a sibling bid was accepted.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:  "pending",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
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
		"bid status", fmt.Errorf("%q is not a valid bid status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"bid status", fmt.Errorf("%d is not a valid bid status", s))
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

// Accept transitions Pending -> Accepted.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("bid", s.String(), StatusAccepted.String())
	}
	return StatusAccepted, nil
}

// Reject transitions Pending -> Rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("bid", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}
