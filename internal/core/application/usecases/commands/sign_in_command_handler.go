package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"servicedesk/internal/core/domain/model/account"
	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/ports"
	"servicedesk/internal/pkg/errs"
)

// SignInResult carries the issued credentials back to the transport layer.
type SignInResult struct {
	Token     string
	AccountID kernel.UUID
	ExpiresAt time.Time
}

// SignInCommandHandler verifies the authorization code with the identity
// provider, finds or creates the matching account, and issues an opaque
// access token persisted with an expiry. Tokens are random, carry no claims,
// and are resolved against storage on every request.
type SignInCommandHandler struct {
	uowFactory AuthUoWFactory
	identity   ports.IdentityProvider
	tokenTTL   time.Duration
}

// NewSignInCommandHandler creates a handler for sign-in operations.
func NewSignInCommandHandler(
	uowFactory AuthUoWFactory,
	identity ports.IdentityProvider,
	tokenTTL time.Duration,
) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
		tokenTTL:   tokenTTL,
	}
}

// Handle processes the sign-in command.
// First sign-in creates the account; later ones reuse it by email.
func (h SignInCommandHandler) Handle(ctx context.Context, cmd SignInCommand) (SignInResult, error) {
	if err := cmd.Validate(); err != nil {
		return SignInResult{}, err
	}

	verified, err := h.identity.Exchange(ctx, cmd.Code())
	if err != nil {
		return SignInResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SignInResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	aggregate, err := accountRepo.GetByEmail(ctx, verified.Email)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		aggregate, err = account.NewAccount(kernel.NewUUID(), verified.Email, account.Profile{
			FirstName: verified.FirstName,
			LastName:  verified.LastName,
		})
		if err != nil {
			return SignInResult{}, err
		}
		if err = accountRepo.Add(ctx, aggregate); err != nil {
			return SignInResult{}, err
		}
	case err != nil:
		return SignInResult{}, err
	}

	token, err := newAccessToken()
	if err != nil {
		return SignInResult{}, err
	}

	expiresAt := time.Now().UTC().Add(h.tokenTTL)
	if err = uow.TokenRepository().Add(ctx, token, aggregate.ID(), expiresAt); err != nil {
		return SignInResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SignInResult{}, err
	}

	return SignInResult{
		Token:     token,
		AccountID: aggregate.ID(),
		ExpiresAt: expiresAt,
	}, nil
}

func newAccessToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
