package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command, keeping concurrent operations isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and repositories bound to the same transaction, so a
// command's multi-aggregate effects commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful Commit is a no-op, so it is safe to defer.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// BidRepository returns a BidRepository bound to the current transaction.
	BidRepository() BidRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction.
	PaymentRepository() PaymentRepository
}
