package commands

import (
	"errors"
	"time"

	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var ErrReconcilePaymentsCommandIsNotConstructed = errors.New(
	"ReconcilePaymentsCommand must be created via NewReconcilePaymentsCommand constructor",
)

// ReconcilePaymentsCommand represents a sweep over pending payment
// transactions: anything older than the cutoff is failed so the customer
// can retry.
type ReconcilePaymentsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Duration

	guard guard.ConstructorGuard
}

// NewReconcilePaymentsCommand creates a reconciliation command. cutoff is
// how long a transaction may stay pending before it is written off.
func NewReconcilePaymentsCommand(cutoff time.Duration) (ReconcilePaymentsCommand, error) {
	if cutoff <= 0 {
		return ReconcilePaymentsCommand{}, errs.NewValueIsInvalidError("reconciliation cutoff")
	}

	return ReconcilePaymentsCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentsCommandIsNotConstructed)
}

// Cutoff returns the maximum age a pending transaction may reach.
func (c ReconcilePaymentsCommand) Cutoff() time.Duration {
	return c.cutoff
}
