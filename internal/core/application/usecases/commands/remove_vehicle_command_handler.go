package commands

import (
	"context"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/pkg/errs"
)

// RemoveVehicleCommandHandler retires a vehicle. Removal is refused while the
// vehicle still has bookings in a non-terminal status; cancelling those on
// the owner's behalf would bypass the farmer-only cancellation rule.
type RemoveVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveVehicleCommandHandler creates a handler for vehicle removal.
func NewRemoveVehicleCommandHandler(uowFactory UoWFactory) RemoveVehicleCommandHandler {
	return RemoveVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle removal command.
func (h RemoveVehicleCommandHandler) Handle(ctx context.Context, command RemoveVehicleCommand) error {
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

	targetVehicle, err := uow.VehicleRepository().Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}
	if err = command.Actor().RequireActor(targetVehicle.OwnerID(), "vehicle owner"); err != nil {
		return err
	}

	active, err := uow.BookingRepository().GetActiveByVehicle(ctx, targetVehicle.ID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.NewInvalidStateError(
			"remove vehicle", "active bookings present", "no active bookings")
	}

	if err = uow.VehicleRepository().Delete(ctx, targetVehicle.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
