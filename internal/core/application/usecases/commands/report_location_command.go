package commands

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// LocationRole selects which of the order's two location channels a report
// targets.
type LocationRole string

const (
	// CustomerRole targets the customer-reported location channel.
	CustomerRole LocationRole = "customer"

	// SpecialistRole targets the specialist-reported location channel.
	SpecialistRole LocationRole = "specialist"
)

// Validate checks that the role is one of the two known channels.
func (r LocationRole) Validate() error {
	if r != CustomerRole && r != SpecialistRole {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// ReportLocationCommand represents a live coordinate report for one side of
// an active order.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	role    LocationRole
	point   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command to report coordinates for the
// given channel. Validates the ids, the role, and the geographic bounds of
// the coordinates.
func NewReportLocationCommand(
	orderID, actorID kernel.UUID,
	role LocationRole,
	latitude, longitude float64,
) (ReportLocationCommand, error) {
	cmd := ReportLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
		cmd.setRole(role),
		cmd.setPoint(latitude, longitude),
	); err != nil {
		return ReportLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being tracked.
func (c ReportLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the reporting account.
func (c ReportLocationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the targeted location channel.
func (c ReportLocationCommand) Role() LocationRole {
	return c.role
}

// Point returns the reported coordinates.
func (c ReportLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c *ReportLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportLocationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *ReportLocationCommand) setRole(role LocationRole) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *ReportLocationCommand) setPoint(latitude, longitude float64) error {
	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}

	c.point = point
	return nil
}
