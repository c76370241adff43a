package commands

import (
	"errors"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to publish a new order.
// Carries the target specialty and the immutable customer-supplied metadata.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	specialtyID specialty.ID

	description   string
	proposedPrice *float64
	preferredAt   *time.Time
	addressText   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to publish a new order.
// Validates the ids, that the specialty belongs to the enumeration, and that
// the proposed price, when present, is not negative.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	rawSpecialtyID string,
	description string,
	proposedPrice *float64,
	preferredAt *time.Time,
	addressText string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		preferredAt: preferredAt,
		addressText: addressText,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setSpecialtyID(rawSpecialtyID),
		cmd.setProposedPrice(proposedPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer publishing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// SpecialtyID returns the requested specialty.
func (c CreateOrderCommand) SpecialtyID() specialty.ID {
	return c.specialtyID
}

// Description returns the free-form problem description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// ProposedPrice returns the customer's proposed price, when supplied.
func (c CreateOrderCommand) ProposedPrice() *float64 {
	return c.proposedPrice
}

// PreferredAt returns the preferred service time, when supplied.
func (c CreateOrderCommand) PreferredAt() *time.Time {
	return c.preferredAt
}

// AddressText returns the free-form address, when supplied.
func (c CreateOrderCommand) AddressText() string {
	return c.addressText
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setSpecialtyID(raw string) error {
	id, err := specialty.Parse(raw)
	if err != nil {
		return err
	}

	c.specialtyID = id
	return nil
}

func (c *CreateOrderCommand) setProposedPrice(price *float64) error {
	if price != nil && *price < 0 {
		return errs.NewValueIsOutOfRangeError("proposedPrice", *price, 0, nil)
	}

	c.proposedPrice = price
	return nil
}
