package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrRemoveVehicleCommandIsNotConstructed = errors.New(
	"RemoveVehicleCommand must be created via NewRemoveVehicleCommand constructor",
)

// RemoveVehicleCommand represents an owner's request to retire a vehicle.
type RemoveVehicleCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveVehicleCommand creates a validated vehicle removal command.
func NewRemoveVehicleCommand(actor auth.Principal, vehicleID kernel.UUID) (RemoveVehicleCommand, error) {
	if err := errors.Join(actor.Validate(), vehicleID.Validate()); err != nil {
		return RemoveVehicleCommand{}, err
	}

	return RemoveVehicleCommand{
		actor:     actor,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveVehicleCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c RemoveVehicleCommand) Actor() auth.Principal {
	return c.actor
}

// VehicleID returns the vehicle to remove.
func (c RemoveVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
