// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the external identity
// provider. Adapters implement them; use case handlers depend only on them.
package ports

import (
	"context"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/core/domain/model/specialty"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateIfStatus persists changes to an existing order only when its
	// stored status still equals expected. When another writer changed the
	// status first, no row is updated and a conflict error is returned.
	// This is the at-most-one-winner guarantee for concurrent claims.
	UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpenBySpecialties retrieves open orders whose specialty is in the
	// given set, newest first. An empty set yields an empty result.
	GetAllOpenBySpecialties(ctx context.Context, specialties specialty.Set) ([]*order.Order, error)

	// GetAllByCustomer retrieves every order created by the customer, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllBySpecialist retrieves every order assigned to the specialist,
	// newest first. Orders the specialist later released are not included.
	GetAllBySpecialist(ctx context.Context, specialistID kernel.UUID) ([]*order.Order, error)

	// HasOpenByCustomer reports whether the customer already owns an order
	// in Open status. At most one open order per customer is allowed.
	HasOpenByCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}
