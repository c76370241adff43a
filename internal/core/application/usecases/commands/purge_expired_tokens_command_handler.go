package commands

import (
	"context"
	"time"
)

// PurgeExpiredTokensCommandHandler removes expired access tokens from storage.
type PurgeExpiredTokensCommandHandler struct {
	uowFactory TokenUoWFactory
}

// NewPurgeExpiredTokensCommandHandler creates a handler for token purging.
func NewPurgeExpiredTokensCommandHandler(uowFactory TokenUoWFactory) PurgeExpiredTokensCommandHandler {
	return PurgeExpiredTokensCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns how many tokens were removed.
func (h PurgeExpiredTokensCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.TokenRepository().DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
