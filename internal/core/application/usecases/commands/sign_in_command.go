package commands

import (
	"errors"

	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/guard"
)

var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor",
)

// SignInCommand represents a sign-in attempt carrying the authorization code
// returned by the external identity provider.
type SignInCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a sign-in command from an authorization code.
func NewSignInCommand(code string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCode(code); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Code returns the authorization code to exchange.
func (c SignInCommand) Code() string {
	return c.code
}

func (c *SignInCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
