package queries

import (
	"errors"
	"strings"

	"servicedesk/internal/pkg/guard"
)

var ErrListSpecialistsQueryIsNotConstructed = errors.New(
	"ListSpecialistsQuery must be created via NewListSpecialistsQuery constructor",
)

// ListSpecialistsQuery retrieves the public specialist directory, best rated
// first, optionally narrowed to one city.
type ListSpecialistsQuery struct {
	city string

	guard guard.ConstructorGuard
}

// NewListSpecialistsQuery creates a directory query. An empty city lists
// specialists everywhere.
func NewListSpecialistsQuery(city string) ListSpecialistsQuery {
	return ListSpecialistsQuery{
		city:  strings.TrimSpace(city),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListSpecialistsQuery) Validate() error {
	return q.guard.Validate(ErrListSpecialistsQueryIsNotConstructed)
}

// City returns the city filter, empty for no filter.
func (q ListSpecialistsQuery) City() string {
	return q.city
}
