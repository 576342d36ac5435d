package commands

import (
	"context"
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/pkg/errs"
)

// AssignDriverCommandHandler puts a driver account on a vehicle. Only the
// vehicle's owner may assign, and the assigned account must hold the driver
// role. Reassignment is allowed.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
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

	driver, err := uow.AccountRepository().Get(ctx, command.DriverID())
	if err != nil {
		return err
	}
	if driver.Role() != auth.RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause(
			"driverId", errors.New("account does not hold the driver role"))
	}

	if err = targetVehicle.AssignDriver(driver.ID()); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, targetVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
