package queries

import (
	"errors"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrListSpecialistOrdersQueryIsNotConstructed = errors.New(
	"ListSpecialistOrdersQuery must be created via NewListSpecialistOrdersQuery constructor",
)

// ListSpecialistOrdersQuery retrieves every order currently assigned to a
// specialist, newest first. Orders the specialist released are gone from this
// list because release clears the assignment.
type ListSpecialistOrdersQuery struct {
	specialistID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListSpecialistOrdersQuery creates a query for a specialist's assigned orders.
func NewListSpecialistOrdersQuery(specialistID kernel.UUID) (ListSpecialistOrdersQuery, error) {
	if err := specialistID.Validate(); err != nil {
		return ListSpecialistOrdersQuery{}, err
	}

	return ListSpecialistOrdersQuery{
		specialistID: specialistID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListSpecialistOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListSpecialistOrdersQueryIsNotConstructed)
}

// SpecialistID returns the identifier of the specialist.
func (q ListSpecialistOrdersQuery) SpecialistID() kernel.UUID {
	return q.specialistID
}
