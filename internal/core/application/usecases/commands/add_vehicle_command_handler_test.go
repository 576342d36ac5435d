package commands_test

import (
	"testing"

	"farmfreight/internal/core/application/usecases/commands"
	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := newPrincipal(auth.RoleOwner)
	vehicleID := kernel.NewUUID()

	cmd, err := commands.NewAddVehicleCommand(
		owner, vehicleID, "KA01AB1234", vehicle.TypeTruck,
		1000, 8, []string{"Hosur", "Bengaluru"}, "10 per kg", 200)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Add", mock.Anything, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			return v.ID() == vehicleID && v.OwnerID() == owner.ID() &&
				v.Remaining() == 1000 && v.Status() == vehicle.StatusAvailable
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddVehicleCommandHandler_Handle_OnlyOwnersMayRegister(t *testing.T) {
	ctx := t.Context()
	driver := newPrincipal(auth.RoleDriver)

	cmd, err := commands.NewAddVehicleCommand(
		driver, kernel.NewUUID(), "KA01AB1234", vehicle.TypeTruck,
		1000, 8, []string{"Hosur", "Bengaluru"}, "10 per kg", 200)
	require.NoError(t, err)

	factory := new(MockVehicleUoWFactory)

	h := commands.NewAddVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestAddVehicleCommandHandler_Handle_DuplicateVehicleNumber(t *testing.T) {
	ctx := t.Context()
	owner := newPrincipal(auth.RoleOwner)

	cmd, err := commands.NewAddVehicleCommand(
		owner, kernel.NewUUID(), "KA01AB1234", vehicle.TypeTruck,
		1000, 8, []string{"Hosur", "Bengaluru"}, "10 per kg", 200)
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Add", mock.Anything, mock.Anything).
			Return(errs.NewDuplicateKeyError("vehicleNumber")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateKey)
}

func TestAddVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockVehicleUoWFactory)

	h := commands.NewAddVehicleCommandHandler(factory)
	err := h.Handle(ctx, commands.AddVehicleCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
