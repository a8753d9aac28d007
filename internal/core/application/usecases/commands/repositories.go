// Package commands contains the write-side operations of the marketplace.
// Every handler follows the same shape: validate the command, open a unit
// of work, mutate aggregates, commit, then fire best-effort notifications.
package commands

import (
	"context"

	"freightbid/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest composition that covers
// the aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within
	// a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// BidRepoFactory provides access to the bid ledger within a transaction.
	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a
	// transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// MarketUoW manages transactions spanning shipments and the bid ledger.
	// Used by the bidding operations, where acceptance must update both
	// sides atomically.
	MarketUoW interface {
		TxManager
		ShipmentRepoFactory
		BidRepoFactory
	}

	// MarketUoWFactory creates new market unit of work instances.
	MarketUoWFactory interface {
		Create() MarketUoW
	}

	// PaymentUoW manages transactions spanning shipments, bids, and payment
	// transactions. Payment operations read the accepted bid for the amount
	// and flip the shipment to paid alongside the transaction record.
	PaymentUoW interface {
		TxManager
		ShipmentRepoFactory
		BidRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
