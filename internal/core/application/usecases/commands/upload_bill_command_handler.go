package commands

import (
	"context"
	"time"

	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/services"
)

// UploadBillCommandHandler stores the sale bill on a booking at
// pending_market. The settlement is computed once here, from the bill amount,
// the vehicle's advance and its rent description, and stored immutably with
// the bill; uploading also resets both payment confirmations and moves the
// booking to pending_payment.
type UploadBillCommandHandler struct {
	uowFactory UoWFactory
	calculator services.SettlementCalculator
}

// NewUploadBillCommandHandler creates a handler for bill uploads.
func NewUploadBillCommandHandler(uowFactory UoWFactory) UploadBillCommandHandler {
	return UploadBillCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewSettlementCalculator(),
	}
}

// Handle processes the bill upload command.
func (h UploadBillCommandHandler) Handle(ctx context.Context, command UploadBillCommand) error {
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

	billed, err := uow.BookingRepository().GetForUpdate(ctx, command.BookingID())
	if err != nil {
		return err
	}
	bookedVehicle, err := uow.VehicleRepository().Get(ctx, billed.VehicleID())
	if err != nil {
		return err
	}
	if err = requireAssignedDriver(command.Actor(), bookedVehicle); err != nil {
		return err
	}

	settlement, err := h.calculator.Calculate(
		command.Amount(), bookedVehicle.Advance(), bookedVehicle.Rent())
	if err != nil {
		return err
	}

	now := time.Now()
	bill, err := booking.NewBill(
		command.Amount(), command.FileRef(), command.Actor().ID(), now,
		bookedVehicle.Advance(), bookedVehicle.Rent(), settlement)
	if err != nil {
		return err
	}

	if err = billed.AttachBill(bill, now); err != nil {
		return err
	}
	if err = uow.BookingRepository().Update(ctx, billed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
