package commands_test

import (
	"testing"

	"farmfreight/internal/core/application/usecases/commands"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/booking"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	farmer := newPrincipal(auth.RoleFarmer)
	ownerID := kernel.NewUUID()
	testVehicle := newTestVehicle(ownerID, nil)
	pending := newPendingBooking(farmer.ID(), testVehicle.ID(), ownerID)
	require.NoError(t, testVehicle.Reserve(pending.ID(), pending.RequiredWeight()))

	cmd, err := commands.NewCancelBookingCommand(farmer, pending.ID())
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetForUpdate", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetForUpdate", mock.Anything, testVehicle.ID()).Return(testVehicle, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Update", mock.Anything, testVehicle).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBookingCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, booking.StatusCancelled, pending.Status())
	assert.InDelta(t, 1000, testVehicle.Remaining(), 0.001)
	assert.False(t, testVehicle.HasBooking(pending.ID()))

	bookingRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle_OnlyTheBookingFarmerMayCancel(t *testing.T) {
	ctx := t.Context()
	otherFarmer := newPrincipal(auth.RoleFarmer)
	pending := newPendingBooking(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCancelBookingCommand(otherFarmer, pending.ID())
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetForUpdate", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBookingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, booking.StatusPending, pending.Status())
}

func TestCancelBookingCommandHandler_Handle_OnlyPendingBookingsCancel(t *testing.T) {
	ctx := t.Context()
	farmer := newPrincipal(auth.RoleFarmer)
	ownerID := kernel.NewUUID()
	testVehicle := newTestVehicle(ownerID, nil)
	dispatched := newPendingPaymentBooking(farmer.ID(), testVehicle.ID(), kernel.NewUUID(), false)

	cmd, err := commands.NewCancelBookingCommand(farmer, dispatched.ID())
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetForUpdate", mock.Anything, dispatched.ID()).Return(dispatched, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("GetForUpdate", mock.Anything, testVehicle.ID()).Return(testVehicle, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBookingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, booking.StatusPendingPayment, dispatched.Status())
}

func TestCancelBookingCommandHandler_Handle_BookingNotFound(t *testing.T) {
	ctx := t.Context()
	farmer := newPrincipal(auth.RoleFarmer)
	bookingID := kernel.NewUUID()

	cmd, err := commands.NewCancelBookingCommand(farmer, bookingID)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("GetForUpdate", mock.Anything, bookingID).
			Return(nil, errs.NewObjectNotFoundError("bookingId", bookingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelBookingCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
