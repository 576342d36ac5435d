package commands

import (
	"context"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/vehicle"
)

// AddVehicleCommandHandler registers a vehicle for an owner. The vehicle
// starts with its full capacity available; vehicle number uniqueness is
// enforced by the repository.
type AddVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewAddVehicleCommandHandler creates a handler for vehicle registration.
func NewAddVehicleCommandHandler(uowFactory VehicleUoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Only owners may register vehicles; the acting
// owner becomes the vehicle's owner.
func (h AddVehicleCommandHandler) Handle(ctx context.Context, command AddVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireRole(auth.RoleOwner); err != nil {
		return err
	}

	capacity, err := vehicle.NewCapacity(command.CapacityWeight(), command.CapacityHeight())
	if err != nil {
		return err
	}

	newVehicle, err := vehicle.NewVehicle(
		command.VehicleID(), command.Actor().ID(), command.VehicleNumber(),
		command.VehicleType(), capacity, command.Route(), command.Rent(), command.Advance())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
