package commands

import (
	"context"

	"farmfreight/internal/core/domain/model/auth"
)

// UpdateVehicleCommandHandler applies an owner's edits to a vehicle: an
// operational status override, a new rent description or a new route. The
// capacity ledger is untouched; derived statuses reassert themselves on the
// next reserve or release.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle edits.
func NewUpdateVehicleCommandHandler(uowFactory VehicleUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Only the vehicle's owner may edit it.
func (h UpdateVehicleCommandHandler) Handle(ctx context.Context, command UpdateVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireRole(auth.RoleOwner); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	editedVehicle, err := uow.VehicleRepository().Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}
	if err = command.Actor().RequireActor(editedVehicle.OwnerID(), "vehicle owner"); err != nil {
		return err
	}

	if command.Status() != nil {
		if err = editedVehicle.ChangeStatus(*command.Status()); err != nil {
			return err
		}
	}
	if command.Rent() != "" {
		if err = editedVehicle.ChangeRent(command.Rent()); err != nil {
			return err
		}
	}
	if command.Route() != nil {
		if err = editedVehicle.ChangeRoute(command.Route()); err != nil {
			return err
		}
	}

	if err = uow.VehicleRepository().Update(ctx, editedVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
