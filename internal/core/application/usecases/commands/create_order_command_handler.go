package commands

import (
	"context"

	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order publication.
// The one-open-order-per-customer rule is checked up front for a clear error
// message; two concurrent creates can both pass that read, so the store's
// partial unique index on open orders is what actually serializes them, with
// the loser's insert surfacing as a conflict.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order publication.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Returns a conflict error when the customer already owns an open order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	hasOpen, err := orderRepo.HasOpenByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if hasOpen {
		return errs.NewConflictError("customer already has an open order")
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.SpecialtyID(), order.Details{
		Description:   cmd.Description(),
		ProposedPrice: cmd.ProposedPrice(),
		PreferredAt:   cmd.PreferredAt(),
		AddressText:   cmd.AddressText(),
	})
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
