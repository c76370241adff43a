package commands

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/guard"
)

var ErrSetSpecialistProfileCommandIsNotConstructed = errors.New(
	"SetSpecialistProfileCommand must be created via NewSetSpecialistProfileCommand constructor",
)

// SetSpecialistProfileCommand represents an account toggling specialist mode
// and declaring the specialties they service. Raw specialty ids outside the
// enumeration are dropped, not rejected.
type SetSpecialistProfileCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	isSpecialist bool
	specialties  specialty.Set
	city         string
	bio          string

	guard guard.ConstructorGuard
}

// NewSetSpecialistProfileCommand creates a command to update specialist mode.
func NewSetSpecialistProfileCommand(
	accountID kernel.UUID,
	isSpecialist bool,
	rawSpecialties []string,
	city, bio string,
) (SetSpecialistProfileCommand, error) {
	cmd := SetSpecialistProfileCommand{
		isSpecialist: isSpecialist,
		specialties:  specialty.NewSet(rawSpecialties),
		city:         city,
		bio:          bio,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setAccountID(accountID); err != nil {
		return SetSpecialistProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetSpecialistProfileCommand) Validate() error {
	return c.guard.Validate(ErrSetSpecialistProfileCommandIsNotConstructed)
}

// AccountID returns the identifier of the account being updated.
func (c SetSpecialistProfileCommand) AccountID() kernel.UUID {
	return c.accountID
}

// IsSpecialist returns the requested specialist mode flag.
func (c SetSpecialistProfileCommand) IsSpecialist() bool {
	return c.isSpecialist
}

// Specialties returns the declared capability set.
func (c SetSpecialistProfileCommand) Specialties() specialty.Set {
	return c.specialties
}

// City returns the specialist's service city.
func (c SetSpecialistProfileCommand) City() string {
	return c.city
}

// Bio returns the specialist's self-description.
func (c SetSpecialistProfileCommand) Bio() string {
	return c.bio
}

func (c *SetSpecialistProfileCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
