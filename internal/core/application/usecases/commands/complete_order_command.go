package commands

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the assigned specialist finishing an order.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	specialistID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an in-progress order.
func NewCompleteOrderCommand(orderID, specialistID kernel.UUID) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpecialistID(specialistID),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SpecialistID returns the identifier of the assigned specialist.
func (c CompleteOrderCommand) SpecialistID() kernel.UUID {
	return c.specialistID
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setSpecialistID(specialistID kernel.UUID) error {
	if err := specialistID.Validate(); err != nil {
		return err
	}

	c.specialistID = specialistID
	return nil
}
