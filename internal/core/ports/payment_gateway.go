package ports

import (
	"context"

	"freightbid/internal/core/domain/model/payment"
)

// ChargeResult is the gateway's answer to a charge request.
type ChargeResult struct {
	// ProviderRef is the gateway's transaction reference.
	ProviderRef string

	// Accepted reports whether the gateway confirmed the charge.
	Accepted bool
}

// PaymentGateway is the port to the mobile money providers. Charge is
// synchronous; providers that settle asynchronously confirm later through
// the callback endpoint instead.
type PaymentGateway interface {
	Charge(ctx context.Context, method payment.Method, amount float64, customerPhone string) (ChargeResult, error)
}
