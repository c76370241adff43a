package ports

import (
	"context"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
)

// TokenRepository defines the persistence contract for opaque bearer tokens.
// Tokens are random strings handed out at sign-in and resolved on every
// authenticated request; expired tokens are purged by a background job.
type TokenRepository interface {
	// Add stores a freshly issued token for the account with its expiry time.
	Add(ctx context.Context, token string, accountID kernel.UUID, expiresAt time.Time) error

	// ResolveAccountID returns the account the token belongs to.
	// Returns an object-not-found error for unknown or expired tokens.
	ResolveAccountID(ctx context.Context, token string) (kernel.UUID, error)

	// Delete revokes a single token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all tokens whose expiry time has passed and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
