package queries

import (
	"errors"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves a single account profile projection by id.
type GetAccountQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query for one account profile.
func NewGetAccountQuery(accountID kernel.UUID) (GetAccountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}

	return GetAccountQuery{
		accountID: accountID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountID returns the identifier of the requested account.
func (q GetAccountQuery) AccountID() kernel.UUID {
	return q.accountID
}

// AccountView is the profile projection returned to clients.
type AccountView struct {
	ID        kernel.UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	City      string
	Bio       string
	Rating    float64

	IsSpecialist bool
	Specialties  []string

	CreatedAt time.Time
}
