// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides UUID identifiers and geographic locations as immutable,
// validated value objects. Aggregates in the shipment, bid, and payment
// packages build on these primitives instead of using raw strings or floats,
// keeping invariants (valid ids, in-range coordinates, non-empty addresses)
// enforced in one place.
package kernel
