package commands

import (
	"context"
	"time"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler records a payment confirmation from the
// vehicle's driver or owner. The booking row is locked for the transaction,
// so when both parties confirm concurrently exactly one call observes the
// second flag and completes the booking. Re-confirming an already confirmed
// role commits without any change.
type ConfirmPaymentCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment
// confirmations.
func NewConfirmPaymentCommandHandler(uowFactory UoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command. It reports whether this call
// completed the booking.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, command ConfirmPaymentCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	confirmed, err := uow.BookingRepository().GetForUpdate(ctx, command.BookingID())
	if err != nil {
		return false, err
	}
	bookedVehicle, err := uow.VehicleRepository().Get(ctx, confirmed.VehicleID())
	if err != nil {
		return false, err
	}

	actor := command.Actor()
	switch actor.Role() {
	case auth.RoleDriver:
		if err = requireAssignedDriver(actor, bookedVehicle); err != nil {
			return false, err
		}
	case auth.RoleOwner:
		if err = actor.RequireActor(bookedVehicle.OwnerID(), "vehicle owner"); err != nil {
			return false, err
		}
	default:
		return false, errs.NewForbiddenError("only the assigned driver or the vehicle owner may confirm payment")
	}

	completed, err := confirmed.ConfirmPayment(actor.Role(), actor.ID(), time.Now())
	if err != nil {
		return false, err
	}

	if err = uow.BookingRepository().Update(ctx, confirmed); err != nil {
		return false, err
	}

	return completed, uow.Commit(ctx)
}
