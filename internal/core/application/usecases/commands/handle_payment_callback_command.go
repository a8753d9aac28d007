package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var ErrHandlePaymentCallbackCommandIsNotConstructed = errors.New(
	"HandlePaymentCallbackCommand must be created via NewHandlePaymentCallbackCommand constructor",
)

// HandlePaymentCallbackCommand represents a provider's asynchronous
// settlement report for a transaction. Providers may redeliver; handling is
// idempotent.
type HandlePaymentCallbackCommand struct { //nolint:recvcheck //using for validation
	paymentID   kernel.UUID
	providerRef string
	succeeded   bool

	guard guard.ConstructorGuard
}

// NewHandlePaymentCallbackCommand creates a command from a provider
// callback.
func NewHandlePaymentCallbackCommand(paymentID kernel.UUID, providerRef string, succeeded bool) (HandlePaymentCallbackCommand, error) {
	cmd := HandlePaymentCallbackCommand{
		succeeded: succeeded,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setProviderRef(providerRef),
	); err != nil {
		return HandlePaymentCallbackCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HandlePaymentCallbackCommand) Validate() error {
	return c.guard.Validate(ErrHandlePaymentCallbackCommandIsNotConstructed)
}

// PaymentID returns the transaction the callback refers to.
func (c HandlePaymentCallbackCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// ProviderRef returns the gateway's transaction reference.
func (c HandlePaymentCallbackCommand) ProviderRef() string {
	return c.providerRef
}

// Succeeded reports whether the provider confirmed the charge.
func (c HandlePaymentCallbackCommand) Succeeded() bool {
	return c.succeeded
}

func (c *HandlePaymentCallbackCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.paymentID = id
	return nil
}

func (c *HandlePaymentCallbackCommand) setProviderRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("provider reference")
	}
	c.providerRef = ref
	return nil
}
