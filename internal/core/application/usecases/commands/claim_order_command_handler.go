package commands

import (
	"context"

	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/core/domain/services"
)

// ClaimOrderCommandHandler handles specialists claiming open orders.
//
// At-most-one-winner: the in-memory transition checks the status read inside
// the transaction, but the persistence call is still conditioned on the row
// holding Open status at write time. When two specialists race, the store
// updates exactly one row; the loser gets a conflict error.
type ClaimOrderCommandHandler struct {
	uowFactory ClaimUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory ClaimUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
// Returns an object-not-found error for unknown orders, a conflict error when
// the order is no longer open, and a forbidden error when the specialist does
// not service the order's specialty.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	accountRepo := uow.AccountRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	specialist, err := accountRepo.Get(ctx, cmd.SpecialistID())
	if err != nil {
		return err
	}

	if err = services.NewClaimPolicy().Claim(aggregate, specialist); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, aggregate, order.Open); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
