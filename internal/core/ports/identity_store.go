package ports

import (
	"context"

	"freightbid/internal/core/domain/model/identity"
	"freightbid/internal/core/domain/model/kernel"
)

// IdentityStore is the read-only port to the user directory. Accounts are
// managed elsewhere; the marketplace only needs to resolve actors and find
// drivers to notify.
type IdentityStore interface {
	// FindByID resolves a user by id, or errs.ErrObjectNotFound.
	FindByID(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// ListVerifiedDrivers returns every driver whose verification passed.
	// Used for the new-shipment fan-out at publish time.
	ListVerifiedDrivers(ctx context.Context) ([]*identity.User, error)
}
