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

var ErrAddVehicleCommandIsNotConstructed = errors.New(
	"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
)

// AddVehicleCommand represents an owner's request to register a vehicle.
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	actor          auth.Principal
	vehicleID      kernel.UUID
	vehicleNumber  string
	vehicleType    vehicle.Type
	capacityWeight float64
	capacityHeight float64
	route          []string
	rent           string
	advance        float64

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a validated vehicle registration command.
func NewAddVehicleCommand(
	actor auth.Principal, vehicleID kernel.UUID, vehicleNumber string, vehicleType vehicle.Type,
	capacityWeight float64, capacityHeight float64, route []string, rent string, advance float64,
) (AddVehicleCommand, error) {
	command := AddVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActor(actor),
		command.setVehicleID(vehicleID),
		command.setVehicleNumber(vehicleNumber),
		command.setVehicleType(vehicleType),
		command.setCapacity(capacityWeight, capacityHeight),
		command.setRoute(route),
		command.setRent(rent),
		command.setAdvance(advance),
	); err != nil {
		return AddVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// Actor returns the acting principal.
func (c AddVehicleCommand) Actor() auth.Principal {
	return c.actor
}

// VehicleID returns the identifier for the new vehicle.
func (c AddVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// VehicleNumber returns the registration plate number.
func (c AddVehicleCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the body type.
func (c AddVehicleCommand) VehicleType() vehicle.Type {
	return c.vehicleType
}

// CapacityWeight returns the weight capacity in kilograms.
func (c AddVehicleCommand) CapacityWeight() float64 {
	return c.capacityWeight
}

// CapacityHeight returns the height limit in feet.
func (c AddVehicleCommand) CapacityHeight() float64 {
	return c.capacityHeight
}

// Route returns the ordered list of stops.
func (c AddVehicleCommand) Route() []string {
	return c.route
}

// Rent returns the rent description.
func (c AddVehicleCommand) Rent() string {
	return c.rent
}

// Advance returns the advance amount.
func (c AddVehicleCommand) Advance() float64 {
	return c.advance
}

func (c *AddVehicleCommand) setActor(actor auth.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AddVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	c.vehicleID = vehicleID
	return nil
}

func (c *AddVehicleCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicleNumber")
	}
	c.vehicleNumber = vehicleNumber
	return nil
}

func (c *AddVehicleCommand) setVehicleType(vehicleType vehicle.Type) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *AddVehicleCommand) setCapacity(weight float64, height float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityWeight", fmt.Errorf("%v is not greater than 0", weight))
	}
	if height < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityHeight", fmt.Errorf("%v is negative", height))
	}
	c.capacityWeight = weight
	c.capacityHeight = height
	return nil
}

func (c *AddVehicleCommand) setRoute(route []string) error {
	if len(route) < 2 {
		return errs.NewValueIsInvalidErrorWithCause(
			"route", fmt.Errorf("%d stops, at least 2 are required", len(route)))
	}
	c.route = route
	return nil
}

func (c *AddVehicleCommand) setRent(rent string) error {
	if rent == "" {
		return errs.NewValueIsRequiredError("rent")
	}
	c.rent = rent
	return nil
}

func (c *AddVehicleCommand) setAdvance(advance float64) error {
	if advance < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"advance", fmt.Errorf("%v is negative", advance))
	}
	c.advance = advance
	return nil
}
