package commands

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrReleaseOrderCommandIsNotConstructed = errors.New(
	"ReleaseOrderCommand must be created via NewReleaseOrderCommand constructor",
)

// ReleaseOrderCommand represents a request to return an accepted order to the
// open pool. Either side of the match may release: the specialist backs out,
// or the customer rejects the specialist.
type ReleaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseOrderCommand creates a command to release an accepted order.
func NewReleaseOrderCommand(orderID, actorID kernel.UUID) (ReleaseOrderCommand, error) {
	cmd := ReleaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return ReleaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrReleaseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being released.
func (c ReleaseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the account requesting the release.
func (c ReleaseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *ReleaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReleaseOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
