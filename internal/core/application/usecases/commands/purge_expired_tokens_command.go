package commands

import (
	"errors"

	"servicedesk/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand triggers removal of access tokens whose expiry
// time has passed. Issued periodically by the background job.
type PurgeExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a new command to purge expired tokens.
// This is a parameterless command.
func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	return PurgeExpiredTokensCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(
		ErrPurgeExpiredTokensCommandIsNotConstructed,
	)
}
