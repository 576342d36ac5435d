package commands

import (
	"errors"
	"fmt"

	"farmfreight/internal/core/domain/model/auth"
	"farmfreight/internal/core/domain/model/kernel"
	"farmfreight/internal/core/domain/model/vehicle"
	"farmfreight/internal/pkg/errs"
	"farmfreight/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents an owner's request to edit a vehicle: an
// operational status override, a new rent description or a new route. Fields
// left at their zero value stay unchanged.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Principal
	vehicleID kernel.UUID
	status    *vehicle.Status
	rent      string
	route     []string

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a validated vehicle update command. A nil
// status, empty rent and nil route each mean "leave as is".
func NewUpdateVehicleCommand(
	actor auth.Principal, vehicleID kernel.UUID,
	status *vehicle.Status, rent string, route []string,
) (UpdateVehicleCommand, error) {
	command := UpdateVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setVehicleID(vehicleID),
		command.setStatus(status),
		command.setRent(rent),
		command.setRoute(route),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c UpdateVehicleCommand) Actor() auth.Principal {
	return c.actor
}

// VehicleID returns the vehicle being edited.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Status returns the requested operational status, nil when unchanged.
func (c UpdateVehicleCommand) Status() *vehicle.Status {
	return c.status
}

// Rent returns the new rent description, empty when unchanged.
func (c UpdateVehicleCommand) Rent() string {
	return c.rent
}

// Route returns the new route, nil when unchanged.
func (c UpdateVehicleCommand) Route() []string {
	return c.route
}

func (c *UpdateVehicleCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setStatus(status *vehicle.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	c.status = status
	return nil
}

func (c *UpdateVehicleCommand) setRent(rent string) error {
	c.rent = rent
	return nil
}

func (c *UpdateVehicleCommand) setRoute(route []string) error {
	if route != nil && len(route) < 2 {
		return errs.NewValueIsInvalidErrorWithCause(
			"route", fmt.Errorf("%d stops, at least 2 are required", len(route)))
	}
	c.route = route
	return nil
}
