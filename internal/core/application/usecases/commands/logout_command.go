package commands

import (
	"errors"

	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand represents a request to revoke an access token.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to revoke the given token.
func NewLogoutCommand(token string) (LogoutCommand, error) {
	cmd := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setToken(token); err != nil {
		return LogoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// Token returns the token being revoked.
func (c LogoutCommand) Token() string {
	return c.token
}

func (c *LogoutCommand) setToken(token string) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}
