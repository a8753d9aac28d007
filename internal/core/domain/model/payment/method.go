package payment

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Method identifies the mobile money provider used for a payment.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodTelebirr is Ethio Telecom's mobile money service.
	MethodTelebirr

	// MethodCBEBirr is the Commercial Bank of Ethiopia's mobile money service.
	MethodCBEBirr
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:  "unknown",
		MethodTelebirr: "telebirr",
		MethodCBEBirr:  "cbe_birr",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodTelebirr: "telebirr",
		MethodCBEBirr:  "cbe_birr",
	}
}

// MethodFromString parses a method from its wire representation.
func MethodFromString(s string) (Method, error) {
	for method, str := range getValidMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the Method value is one of the defined providers.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String implements fmt.Stringer. Safe to call on any value.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
