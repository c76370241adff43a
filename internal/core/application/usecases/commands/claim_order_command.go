package commands

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a specialist's request to take an open order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	specialistID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a specialist to claim an order.
func NewClaimOrderCommand(orderID, specialistID kernel.UUID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSpecialistID(specialistID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SpecialistID returns the identifier of the claiming specialist.
func (c ClaimOrderCommand) SpecialistID() kernel.UUID {
	return c.specialistID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setSpecialistID(specialistID kernel.UUID) error {
	if err := specialistID.Validate(); err != nil {
		return err
	}

	c.specialistID = specialistID
	return nil
}
