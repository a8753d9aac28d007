// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the outbound driven
// ports (identity, images, notifications, payment gateway). Adapters
// implement these; use cases depend only on them.
package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment. The write is
	// predicated on the aggregate's version; a concurrent writer winning
	// the race surfaces as errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
