// Package account contains the Account aggregate: a marketplace user who acts
// as a customer and may additionally enable specialist mode, declaring the
// specialties they service. The account's capability set is what the order
// lifecycle consults when a specialist tries to claim an order.
package account

import (
	"errors"
	"strings"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// Profile holds the mutable descriptive fields of an account.
type Profile struct {
	FirstName string
	LastName  string
	Phone     string
	City      string
	Bio       string
}

// Account is the aggregate root for marketplace users. Every account is a
// customer; enabling specialist mode adds a capability set of specialties the
// account may service. Identity (OAuth) and credentials live outside the core;
// the account only carries the resolved profile.
type Account struct {
	id    kernel.UUID
	email string

	profile Profile
	rating  float64

	isSpecialist bool
	specialties  specialty.Set

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewAccount creates an account for a newly signed-in user.
// Email is required; the first name falls back to the email local part when
// the identity provider supplied no display name.
func NewAccount(id kernel.UUID, email string, profile Profile) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
	); err != nil {
		return nil, err
	}

	if profile.FirstName == "" {
		profile.FirstName = firstNameFromEmail(a.email)
	}
	a.profile = profile

	return a, nil
}

// RestoreAccount reconstructs an account from persisted state.
func RestoreAccount(
	id kernel.UUID,
	email string,
	profile Profile,
	rating float64,
	isSpecialist bool,
	specialties specialty.Set,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	a := &Account{
		profile:       profile,
		rating:        rating,
		isSpecialist:  isSpecialist,
		specialties:   specialties,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
	); err != nil {
		return nil, err
	}

	if !isSpecialist && !specialties.IsEmpty() {
		return nil, errs.NewValueIsInvalidError("specialties without specialist mode")
	}

	return a, nil
}

// Validate ensures the Account was properly constructed through a factory method.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the normalized email address.
func (a *Account) Email() string {
	return a.email
}

// Profile returns the descriptive fields.
func (a *Account) Profile() Profile {
	return a.profile
}

// Rating returns the account's aggregate rating. Rating computation happens
// outside the core; the value is carried for projections only.
func (a *Account) Rating() float64 {
	return a.rating
}

// IsSpecialist reports whether specialist mode is enabled.
func (a *Account) IsSpecialist() bool {
	return a.isSpecialist
}

// Capabilities returns the specialties this account may service.
// Empty unless specialist mode is enabled.
func (a *Account) Capabilities() specialty.Set {
	return a.specialties
}

// FullName joins the first and last names, falling back to the email local
// part for accounts without a name.
func (a *Account) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(a.profile.FirstName) + " " + strings.TrimSpace(a.profile.LastName))
	if name == "" {
		return firstNameFromEmail(a.email)
	}
	return name
}

// CreatedAt returns the server creation time.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the time of the last successful mutation.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdateProfile replaces the descriptive fields. Blank first names keep the
// email-derived fallback so downstream projections always have a display name.
func (a *Account) UpdateProfile(profile Profile) {
	if profile.FirstName == "" {
		profile.FirstName = firstNameFromEmail(a.email)
	}
	a.profile = profile
	a.touch()
}

// SetSpecialistMode enables or disables specialist mode. Enabling replaces the
// capability set with the provided one; disabling clears it, so a disabled
// specialist can never be matched against open orders.
func (a *Account) SetSpecialistMode(enabled bool, capabilities specialty.Set) {
	a.isSpecialist = enabled
	if enabled {
		a.specialties = capabilities
	} else {
		a.specialties = specialty.Set{}
	}
	a.touch()
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) touch() {
	a.updatedAt = time.Now().UTC()
}

func firstNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "User"
}
