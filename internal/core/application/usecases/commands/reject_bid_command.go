package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var ErrRejectBidCommandIsNotConstructed = errors.New(
	"RejectBidCommand must be created via NewRejectBidCommand constructor",
)

// RejectBidCommand represents a customer explicitly declining a single bid
// while bidding stays open.
type RejectBidCommand struct { //nolint:recvcheck //using for validation
	bidID   kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectBidCommand creates a command to reject a bid.
func NewRejectBidCommand(bidID, actorID kernel.UUID) (RejectBidCommand, error) {
	cmd := RejectBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBidID(bidID),
		cmd.setActorID(actorID),
	); err != nil {
		return RejectBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBidCommand) Validate() error {
	return c.guard.Validate(ErrRejectBidCommandIsNotConstructed)
}

// BidID returns the bid being declined.
func (c RejectBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// ActorID returns the acting user's identifier.
func (c RejectBidCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RejectBidCommand) setBidID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bidID = id
	return nil
}

func (c *RejectBidCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actorID = id
	return nil
}
