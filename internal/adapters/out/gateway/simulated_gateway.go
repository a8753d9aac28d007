// Package gateway implements the payment gateway port against the
// Ethiopian mobile money providers. Until the provider integrations land,
// SimulatedGateway stands in for both: it accepts every well-formed charge
// and mints a provider reference locally.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"freightbid/internal/core/domain/model/payment"
	"freightbid/internal/core/ports"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
)

// SimulatedGateway approves charges without contacting a provider. With
// Deferred set, charges come back unconfirmed and settle through the
// callback endpoint, which exercises the asynchronous flow end to end.
type SimulatedGateway struct {
	logger *slog.Logger

	// Deferred makes Charge return Accepted=false so the transaction
	// stays pending until a callback arrives.
	Deferred bool
}

// NewSimulatedGateway creates a gateway that confirms charges immediately.
func NewSimulatedGateway(logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger}
}

// Charge validates the request and returns a minted provider reference.
func (g *SimulatedGateway) Charge(
	ctx context.Context, method payment.Method, amount float64, customerPhone string,
) (ports.ChargeResult, error) {
	if err := method.Validate(); err != nil {
		return ports.ChargeResult{}, errs.NewGatewayError(method.String(), err)
	}
	if amount <= 0 {
		return ports.ChargeResult{}, errs.NewGatewayError(method.String(),
			fmt.Errorf("amount must be positive, got %.2f", amount))
	}

	ref := fmt.Sprintf("%s-%s", method.String(), uuid.NewString())

	g.logger.InfoContext(ctx, "simulated charge",
		"method", method.String(),
		"amount", amount,
		"phone", customerPhone,
		"provider_ref", ref,
		"deferred", g.Deferred,
	)

	return ports.ChargeResult{
		ProviderRef: ref,
		Accepted:    !g.Deferred,
	}, nil
}
