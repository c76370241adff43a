package ports

import (
	"context"

	"servicedesk/internal/core/domain/model/account"
	"servicedesk/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	// Returns an object-not-found error when no such account exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its normalized email address.
	// Returns an object-not-found error when no such account exists.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
