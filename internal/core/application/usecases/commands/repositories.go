// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"servicedesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// TokenRepoFactory provides access to the token repository within a transaction.
	TokenRepoFactory interface {
		TokenRepository() ports.TokenRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by lifecycle commands that only touch the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// TokenUoW manages transactions for token-only operations.
	// Used by sign-out and the expired token purge.
	TokenUoW interface {
		TxManager
		TokenRepoFactory
	}

	// TokenUoWFactory creates new token unit of work instances.
	TokenUoWFactory interface {
		Create() TokenUoW
	}

	// ClaimUoW manages transactions spanning orders and accounts.
	// Used by the claim command, which reads the specialist's capabilities
	// and conditionally updates the order in the same transaction.
	ClaimUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}

	// AuthUoW manages transactions spanning accounts and tokens.
	// Used by sign-in, which upserts the account and issues a token atomically.
	AuthUoW interface {
		TxManager
		AccountRepoFactory
		TokenRepoFactory
	}

	// AuthUoWFactory creates new auth unit of work instances.
	AuthUoWFactory interface {
		Create() AuthUoW
	}
)
