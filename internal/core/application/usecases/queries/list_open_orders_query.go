package queries

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrListOpenOrdersQueryIsNotConstructed = errors.New(
	"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
)

// ListOpenOrdersQuery retrieves open orders matching a specialist's
// capability set, newest first. A specialist with an empty capability set
// sees nothing.
type ListOpenOrdersQuery struct {
	specialistID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOpenOrdersQuery creates a query for the specialist's available orders.
func NewListOpenOrdersQuery(specialistID kernel.UUID) (ListOpenOrdersQuery, error) {
	if err := specialistID.Validate(); err != nil {
		return ListOpenOrdersQuery{}, err
	}

	return ListOpenOrdersQuery{
		specialistID: specialistID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}

// SpecialistID returns the identifier of the browsing specialist.
func (q ListOpenOrdersQuery) SpecialistID() kernel.UUID {
	return q.specialistID
}
