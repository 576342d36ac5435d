package commands

import (
	"context"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/pkg/errs"
)

// requireAssignedDriver checks that the actor is the driver assigned to the
// vehicle. Shared by every command the driver performs against a booking.
func requireAssignedDriver(actor auth.Principal, bookedVehicle *vehicle.Vehicle) error {
	if err := actor.RequireRole(auth.RoleDriver); err != nil {
		return err
	}
	if bookedVehicle.DriverID() == nil {
		return errs.NewForbiddenError("vehicle has no assigned driver")
	}
	return actor.RequireActor(*bookedVehicle.DriverID(), "assigned driver")
}

// TransitionBookingStatusCommandHandler moves a booking one step forward on
// the assigned driver's request. Only the two pickup-side steps can be
// requested this way; the booking aggregate rejects everything else.
type TransitionBookingStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransitionBookingStatusCommandHandler creates a handler for driver
// status transitions.
func NewTransitionBookingStatusCommandHandler(uowFactory UoWFactory) TransitionBookingStatusCommandHandler {
	return TransitionBookingStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h TransitionBookingStatusCommandHandler) Handle(
	ctx context.Context, command TransitionBookingStatusCommand,
) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transitioned, err := uow.BookingRepository().GetForUpdate(ctx, command.BookingID())
	if err != nil {
		return err
	}
	bookedVehicle, err := uow.VehicleRepository().Get(ctx, transitioned.VehicleID())
	if err != nil {
		return err
	}
	if err = requireAssignedDriver(command.Actor(), bookedVehicle); err != nil {
		return err
	}

	if err = transitioned.RequestTransition(command.Target(), command.Actor().ID(), time.Now()); err != nil {
		return err
	}
	if err = uow.BookingRepository().Update(ctx, transitioned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
