package commands

import (
	"errors"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents an owner's request to put a driver on a
// vehicle.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	vehicleID kernel.UUID
	driverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a validated driver assignment command.
func NewAssignDriverCommand(
	actor auth.Principal, vehicleID kernel.UUID, driverID kernel.UUID,
) (AssignDriverCommand, error) {
	command := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		vehicleID.Validate(),
		driverID.Validate(),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	command.actor = actor
	command.vehicleID = vehicleID
	command.driverID = driverID
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c AssignDriverCommand) Actor() auth.Principal {
	return c.actor
}

// VehicleID returns the target vehicle.
func (c AssignDriverCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// DriverID returns the driver account to assign.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}
