package commands

import (
	"context"
	"time"
)

// CancelBookingCommandHandler withdraws a pending booking and returns its
// reserved weight to the vehicle in the same transaction. Both rows are
// locked, so a concurrent reserve sees either the booking or the freed
// capacity, never both.
type CancelBookingCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(uowFactory UoWFactory) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Only the booking's farmer may
// cancel, and only while the booking is still pending.
func (h CancelBookingCommandHandler) Handle(ctx context.Context, command CancelBookingCommand) error {
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

	cancelled, err := uow.BookingRepository().GetForUpdate(ctx, command.BookingID())
	if err != nil {
		return err
	}
	if err = command.Actor().RequireActor(cancelled.FarmerID(), "booking farmer"); err != nil {
		return err
	}

	bookedVehicle, err := uow.VehicleRepository().GetForUpdate(ctx, cancelled.VehicleID())
	if err != nil {
		return err
	}

	if err = cancelled.Cancel(time.Now()); err != nil {
		return err
	}
	if err = bookedVehicle.Release(cancelled.ID(), cancelled.RequiredWeight()); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, cancelled); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, bookedVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
