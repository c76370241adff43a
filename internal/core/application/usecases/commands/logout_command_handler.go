package commands

import (
	"context"
)

// LogoutCommandHandler revokes a single access token. Revoking an unknown
// token succeeds; logout is idempotent.
type LogoutCommandHandler struct {
	uowFactory TokenUoWFactory
}

// NewLogoutCommandHandler creates a handler for logout operations.
func NewLogoutCommandHandler(uowFactory TokenUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the logout command.
func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TokenRepository().Delete(ctx, cmd.Token()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
