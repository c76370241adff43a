package commands

import (
	"errors"
	"regexp"
	"strings"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// phonePattern accepts digits, spaces and the usual separators. An empty
// phone clears the field.
var phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)

// UpdateProfileCommand represents an account updating its contact details:
// name, phone and the city shown to the other party of an order.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	firstName string
	lastName  string
	phone     string
	city      string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update the account's contact
// details. The phone must consist of digits and common separators; a blank
// first name falls back to the email-derived display name downstream.
func NewUpdateProfileCommand(
	accountID kernel.UUID,
	firstName, lastName, phone, city string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		firstName: strings.TrimSpace(firstName),
		lastName:  strings.TrimSpace(lastName),
		city:      strings.TrimSpace(city),
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return UpdateProfileCommand{}, err
	}

	if err := cmd.setPhone(phone); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// AccountID returns the identifier of the account being updated.
func (c UpdateProfileCommand) AccountID() kernel.UUID {
	return c.accountID
}

// FirstName returns the requested first name.
func (c UpdateProfileCommand) FirstName() string {
	return c.firstName
}

// LastName returns the requested last name.
func (c UpdateProfileCommand) LastName() string {
	return c.lastName
}

// Phone returns the requested contact phone.
func (c UpdateProfileCommand) Phone() string {
	return c.phone
}

// City returns the requested city.
func (c UpdateProfileCommand) City() string {
	return c.city
}

func (c *UpdateProfileCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *UpdateProfileCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}

	c.phone = phone
	return nil
}
