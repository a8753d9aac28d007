// Package payment contains the Transaction aggregate: a single charge
// attempt against a shipment's accepted bid.
//
// A transaction is pending until the gateway confirms (success) or rejects
// (failed) the charge. Terminal states are yes-or-no forever; retrying a
// failed payment means initiating a fresh transaction. Callback handling is
// idempotent so providers may redeliver without corrupting state.
package payment
