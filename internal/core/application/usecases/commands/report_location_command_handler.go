package commands

import (
	"context"
)

// ReportLocationCommandHandler handles live coordinate reports. Each report
// overwrites the previous value of its channel; no history is kept.
type ReportLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReportLocationCommandHandler creates a handler for location reports.
func NewReportLocationCommandHandler(uowFactory OrderUoWFactory) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes a location report.
// Returns an object-not-found error for unknown orders, a forbidden error when
// the actor does not own the targeted channel, and an invalid-state error when
// the order is not in accepted or in-progress status.
func (h ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
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
	switch cmd.Role() {
	case CustomerRole:
		err = aggregate.ReportCustomerLocation(cmd.ActorID(), cmd.Point())
	case SpecialistRole:
		err = aggregate.ReportSpecialistLocation(cmd.ActorID(), cmd.Point())
	}
	if err != nil {
		return err
	}

	// Conditioned on the status read above so a concurrent terminal
	// transition wins over a late coordinate report.
	if err = orderRepo.UpdateIfStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
