package services

import (
	"servicedesk/internal/core/domain/model/account"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/pkg/errs"
)

// ClaimPolicy is the domain service that assigns an open order to a specialist.
//
// Business rules:
//   - The order must still be open; a lost race surfaces as a conflict
//   - The account must have specialist mode enabled
//   - The account's capability set must include the order's specialty
//
// The policy mutates the order aggregate; whether the assignment actually
// wins the race is decided at persistence time with a conditional update.
type ClaimPolicy struct{}

// NewClaimPolicy creates a new ClaimPolicy instance.
func NewClaimPolicy() ClaimPolicy {
	return ClaimPolicy{}
}

// Claim assigns the order to the given account.
//
// Returns a conflict error when the order is no longer open and a forbidden
// error when the account is not a specialist for the order's specialty.
func (p ClaimPolicy) Claim(ord *order.Order, specialist *account.Account) error {
	if err := ord.Validate(); err != nil {
		return err
	}
	if err := specialist.Validate(); err != nil {
		return err
	}

	if !specialist.IsSpecialist() {
		return errs.NewActorIsForbiddenError(specialist.ID().String(), "claim orders without specialist mode")
	}

	return ord.Claim(specialist.ID(), specialist.Capabilities())
}
