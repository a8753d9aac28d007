package payment

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was
// not created through NewTransaction or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction or RestoreTransaction constructor")

// Transaction is a single charge attempt for a shipment. The amount is
// frozen at initiation to the accepted bid's price; a failed transaction is
// terminal and the customer initiates a fresh one to retry.
//
// Invariants:
//   - amount is positive and never changes after initiation
//   - status moves Pending -> Success or Pending -> Failed, never back
//   - providerRef is set exactly when the transaction left Pending
type Transaction struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	customerID  kernel.UUID
	amount      float64
	method      Method
	status      Status
	providerRef string

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewTransaction creates a pending charge for a shipment.
func NewTransaction(id, shipmentID, customerID kernel.UUID, amount float64, method Method) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		customerID.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidError("payment amount")
	}

	now := time.Now().UTC()
	return &Transaction{
		id:            id,
		shipmentID:    shipmentID,
		customerID:    customerID,
		amount:        amount,
		method:        method,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreTransaction reconstructs a transaction from persistence.
func RestoreTransaction(
	id, shipmentID, customerID kernel.UUID,
	amount float64,
	method Method,
	status Status,
	providerRef string,
	createdAt, updatedAt time.Time,
	version int64,
) (*Transaction, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		customerID.Validate(),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errs.NewValueIsInvalidError("payment amount")
	}
	if status.IsTerminal() && providerRef == "" {
		return nil, errs.NewValueIsRequiredError("provider reference")
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("payment version")
	}

	return &Transaction{
		id:            id,
		shipmentID:    shipmentID,
		customerID:    customerID,
		amount:        amount,
		method:        method,
		status:        status,
		providerRef:   providerRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Transaction was created through a constructor.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the transaction's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// ShipmentID returns the shipment being paid for.
func (t *Transaction) ShipmentID() kernel.UUID {
	return t.shipmentID
}

// CustomerID returns the paying customer's identifier.
func (t *Transaction) CustomerID() kernel.UUID {
	return t.customerID
}

// Amount returns the charge amount in ETB.
func (t *Transaction) Amount() float64 {
	return t.amount
}

// Method returns the mobile money provider.
func (t *Transaction) Method() Method {
	return t.method
}

// Status returns the current transaction status.
func (t *Transaction) Status() Status {
	return t.status
}

// ProviderRef returns the gateway's transaction reference, empty while
// the transaction is pending.
func (t *Transaction) ProviderRef() string {
	return t.providerRef
}

// CreatedAt returns the initiation timestamp.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (t *Transaction) UpdatedAt() time.Time {
	return t.updatedAt
}

// Version returns the optimistic concurrency version.
func (t *Transaction) Version() int64 {
	return t.version
}

// Age reports how long the transaction has been open, measured from
// initiation. Used by the reconciliation sweep to find stuck charges.
func (t *Transaction) Age(now time.Time) time.Duration {
	return now.Sub(t.createdAt)
}

// Succeed records gateway confirmation. Re-applying with the same reference
// is a no-op so duplicated callbacks stay harmless.
func (t *Transaction) Succeed(providerRef string) error {
	if providerRef == "" {
		return errs.NewValueIsRequiredError("provider reference")
	}
	if t.status == StatusSuccess && t.providerRef == providerRef {
		return nil
	}

	newStatus, err := t.status.Succeed()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.providerRef = providerRef
	t.touch()
	return nil
}

// Fail records gateway rejection. Re-applying with the same reference is a
// no-op.
func (t *Transaction) Fail(providerRef string) error {
	if providerRef == "" {
		return errs.NewValueIsRequiredError("provider reference")
	}
	if t.status == StatusFailed && t.providerRef == providerRef {
		return nil
	}

	newStatus, err := t.status.Fail()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.providerRef = providerRef
	t.touch()
	return nil
}

func (t *Transaction) touch() {
	now := time.Now().UTC()
	if !now.After(t.updatedAt) {
		now = t.updatedAt.Add(time.Microsecond)
	}
	t.updatedAt = now
}
