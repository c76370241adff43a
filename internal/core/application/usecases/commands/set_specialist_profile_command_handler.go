package commands

import (
	"context"
)

// SetSpecialistProfileCommandHandler handles accounts toggling specialist
// mode. Disabling the mode clears the capability set, which removes the
// account from open-order matching immediately.
type SetSpecialistProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetSpecialistProfileCommandHandler creates a handler for specialist mode updates.
func NewSetSpecialistProfileCommandHandler(uowFactory AccountUoWFactory) SetSpecialistProfileCommandHandler {
	return SetSpecialistProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the specialist mode update.
// Returns an object-not-found error for unknown accounts.
func (h SetSpecialistProfileCommandHandler) Handle(ctx context.Context, cmd SetSpecialistProfileCommand) error {
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

	accountRepo := uow.AccountRepository()

	aggregate, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	profile := aggregate.Profile()
	profile.City = cmd.City()
	profile.Bio = cmd.Bio()
	aggregate.UpdateProfile(profile)
	aggregate.SetSpecialistMode(cmd.IsSpecialist(), cmd.Specialties())

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
