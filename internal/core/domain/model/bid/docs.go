// Package bid contains the Bid aggregate: a driver's priced offer to carry
// a shipment.
//
// The bid ledger is the single authoritative home of bids; shipments hold
// only a reference to the winning one. Uniqueness of (shipment, driver) is
// enforced by the storage layer so a concurrent double submission loses
// deterministically.
package bid
