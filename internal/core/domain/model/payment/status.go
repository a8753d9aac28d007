package payment

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment transaction.
//
// State transitions:
//
//	Pending ──succeed──> Success
//	   │
//	   └─────fail──────> Failed
//
// Success and Failed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status after initiation, before the
	// gateway confirms or rejects the charge.
	StatusPending

	// StatusSuccess means the gateway confirmed the charge.
	StatusSuccess

	// StatusFailed means the gateway rejected the charge. The customer may
	// initiate a fresh transaction.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusPending: "pending",
		StatusSuccess: "success",
		StatusFailed:  "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending: "pending",
		StatusSuccess: "success",
		StatusFailed:  "failed",
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
		"payment status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status", fmt.Errorf("%d is not a valid payment status", s))
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

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Succeed transitions Pending -> Success.
func (s Status) Succeed() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("payment", s.String(), StatusSuccess.String())
	}
	return StatusSuccess, nil
}

// Fail transitions Pending -> Failed.
func (s Status) Fail() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("payment", s.String(), StatusFailed.String())
	}
	return StatusFailed, nil
}
