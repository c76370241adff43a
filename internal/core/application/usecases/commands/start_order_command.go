package commands

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents the assigned specialist marking an accepted
// order as being worked on.
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	specialistID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to move an order into in-progress.
func NewStartOrderCommand(orderID, specialistID kernel.UUID) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpecialistID(specialistID),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being started.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SpecialistID returns the identifier of the assigned specialist.
func (c StartOrderCommand) SpecialistID() kernel.UUID {
	return c.specialistID
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setSpecialistID(specialistID kernel.UUID) error {
	if err := specialistID.Validate(); err != nil {
		return err
	}

	c.specialistID = specialistID
	return nil
}
