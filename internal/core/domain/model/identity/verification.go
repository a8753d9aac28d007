package identity

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// VerificationStatus reflects the outcome of the out-of-band OTP verification
// flow. Only verified drivers are eligible to bid.
type VerificationStatus int

const (
	// VerificationUnknown represents an invalid or undefined status.
	VerificationUnknown VerificationStatus = iota

	// VerificationPending means the user has registered but not completed verification.
	VerificationPending

	// VerificationVerified means the user passed verification.
	VerificationVerified

	// VerificationRejected means the user failed verification.
	VerificationRejected
)

func getVerificationStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		VerificationPending:  "pending",
		VerificationVerified: "verified",
		VerificationRejected: "rejected",
	}
}

// VerificationFromString parses a verification status from its wire representation.
func VerificationFromString(s string) (VerificationStatus, error) {
	for status, str := range getVerificationStrings() {
		if str == s {
			return status, nil
		}
	}
	return VerificationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"verification status", fmt.Errorf("%q is not a valid verification status", s))
}

// Validate checks the status is one of the defined values.
func (v VerificationStatus) Validate() error {
	if _, ok := getVerificationStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"verification status", fmt.Errorf("%d is not a valid verification status", v))
	}
	return nil
}

// String implements fmt.Stringer.
func (v VerificationStatus) String() string {
	if s, ok := getVerificationStrings()[v]; ok {
		return s
	}
	return "unknown"
}
