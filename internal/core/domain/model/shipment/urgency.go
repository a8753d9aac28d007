package shipment

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Urgency indicates how quickly the customer needs the shipment carried out.
// It is advisory: drivers see it when browsing available shipments.
type Urgency int

const (
	UrgencyUnknown Urgency = iota
	UrgencyLow
	UrgencyMedium
	UrgencyHigh
)

func getUrgencyStrings() map[Urgency]string {
	return map[Urgency]string{
		UrgencyLow:    "low",
		UrgencyMedium: "medium",
		UrgencyHigh:   "high",
	}
}

// UrgencyFromString parses an urgency level from its wire representation.
func UrgencyFromString(s string) (Urgency, error) {
	for u, str := range getUrgencyStrings() {
		if str == s {
			return u, nil
		}
	}
	return UrgencyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"urgency", fmt.Errorf("%q is not a valid urgency", s))
}

// Validate checks the urgency is one of the defined levels.
func (u Urgency) Validate() error {
	if _, ok := getUrgencyStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"urgency", fmt.Errorf("%d is not a valid urgency", u))
	}
	return nil
}

// String implements fmt.Stringer.
func (u Urgency) String() string {
	if s, ok := getUrgencyStrings()[u]; ok {
		return s
	}
	return "unknown"
}
