package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment
// transactions.
type PaymentRepository interface {
	// Add persists a new transaction.
	Add(ctx context.Context, aggregate *payment.Transaction) error

	// Update persists changes to an existing transaction. Like shipments,
	// the write is predicated on the aggregate's version.
	Update(ctx context.Context, aggregate *payment.Transaction) error

	// Get retrieves a transaction by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Transaction, error)

	// GetLatestForShipment retrieves the most recently initiated transaction
	// for a shipment, or errs.ErrObjectNotFound when none exists.
	GetLatestForShipment(ctx context.Context, shipmentID kernel.UUID) (*payment.Transaction, error)

	// GetAllPending retrieves every transaction still in pending status.
	// Used by the reconciliation sweep.
	GetAllPending(ctx context.Context) ([]*payment.Transaction, error)
}
