package commands

import (
	"context"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/vehicle"
)

// CreateBookingResult carries the created booking together with the vehicle's
// ledger state as of the same transaction.
type CreateBookingResult struct {
	Booking *booking.Booking
	Vehicle *vehicle.Vehicle
}

// CreateBookingCommandHandler creates a booking and reserves the requested
// weight on the vehicle in one transaction. The vehicle row is locked for the
// duration, so two concurrent bookings cannot both see the pre-reservation
// remaining capacity.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
func NewCreateBookingCommandHandler(uowFactory UoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking creation command. Only farmers may book. The
// creation history entry records the vehicle's advance as amount and its
// owner as counterparty.
func (h CreateBookingCommandHandler) Handle(
	ctx context.Context, command CreateBookingCommand,
) (CreateBookingResult, error) {
	if err := command.Validate(); err != nil {
		return CreateBookingResult{}, err
	}
	if err := command.Actor().RequireRole(auth.RoleFarmer); err != nil {
		return CreateBookingResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateBookingResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookedVehicle, err := uow.VehicleRepository().GetForUpdate(ctx, command.VehicleID())
	if err != nil {
		return CreateBookingResult{}, err
	}

	newBooking, err := booking.NewBooking(
		command.BookingID(), command.Actor().ID(), bookedVehicle.ID(), command.CropName(),
		command.RequiredWeight(), command.RequiredHeight(),
		command.PickupLocation(), command.DeliveryLocation(), command.BookingDate(),
		bookedVehicle.Advance(), bookedVehicle.OwnerID())
	if err != nil {
		return CreateBookingResult{}, err
	}

	if err = bookedVehicle.Reserve(newBooking.ID(), newBooking.RequiredWeight()); err != nil {
		return CreateBookingResult{}, err
	}

	if err = uow.BookingRepository().Add(ctx, newBooking); err != nil {
		return CreateBookingResult{}, err
	}
	if err = uow.VehicleRepository().Update(ctx, bookedVehicle); err != nil {
		return CreateBookingResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateBookingResult{}, err
	}

	return CreateBookingResult{Booking: newBooking, Vehicle: bookedVehicle}, nil
}
