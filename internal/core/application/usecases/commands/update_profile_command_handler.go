package commands

import (
	"context"
)

// UpdateProfileCommandHandler handles accounts editing their contact details.
// The specialist fields (mode, capabilities, bio) are untouched; those travel
// through the specialist profile command.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update.
// Returns an object-not-found error for unknown accounts.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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
	profile.FirstName = cmd.FirstName()
	profile.LastName = cmd.LastName()
	profile.Phone = cmd.Phone()
	profile.City = cmd.City()
	aggregate.UpdateProfile(profile)

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
