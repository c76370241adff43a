package commands

import (
	"context"
)

// ReleaseOrderCommandHandler handles returning an accepted order to the open
// pool. The assignment and the specialist's location channel are cleared so
// the order is indistinguishable from a freshly created one to browsing
// specialists.
type ReleaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReleaseOrderCommandHandler creates a handler for release operations.
func NewReleaseOrderCommandHandler(uowFactory OrderUoWFactory) ReleaseOrderCommandHandler {
	return ReleaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
// Returns an object-not-found error for unknown orders, a forbidden error when
// the actor is neither the customer nor the assigned specialist, and an
// invalid-transition error when the order is not in accepted or in-progress
// status.
func (h ReleaseOrderCommandHandler) Handle(ctx context.Context, cmd ReleaseOrderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expected := aggregate.Status()
	if err = aggregate.Release(cmd.ActorID()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
